// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package testioc

import (
	"sync"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

var (
	cache         ecache.Cache
	cacheInitOnce sync.Once
)

// InitCache 和线上一样挂在 hrportal: 命名空间下，
// 幂等键和日历缓存都会落在本地 redis 里
func InitCache() ecache.Cache {
	cacheInitOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
		addr := econf.GetString("redis.addr")
		if addr == "" {
			addr = "localhost:6379"
		}
		cache = &ecache.NamespaceCache{
			C:         eredis.NewCache(redis.NewClient(&redis.Options{Addr: addr})),
			Namespace: "hrportal:",
		}
	})
	return cache
}
