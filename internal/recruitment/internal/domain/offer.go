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

package domain

type OfferStatus string

const (
	OfferPending   OfferStatus = "Pending"
	OfferAccepted  OfferStatus = "Accepted"
	OfferDeclined  OfferStatus = "Declined"
	OfferWithdrawn OfferStatus = "Withdrawn"
)

func (s OfferStatus) String() string {
	return string(s)
}

func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferPending, OfferAccepted, OfferDeclined, OfferWithdrawn:
		return true
	default:
		return false
	}
}

type OfferResponse string

const (
	ResponseAccept  OfferResponse = "Accept"
	ResponseDecline OfferResponse = "Decline"
)

// Status 回复之后 offer 的状态
func (r OfferResponse) Status() (OfferStatus, bool) {
	switch r {
	case ResponseAccept:
		return OfferAccepted, true
	case ResponseDecline:
		return OfferDeclined, true
	default:
		return "", false
	}
}

type OfferTerms struct {
	Position         string
	Salary           string
	StartDate        string
	ExpiryDate       string
	EmploymentType   string
	Benefits         string
	ServiceAgreement string
	HRName           string
}

type Offer struct {
	ID            int64
	SN            string
	CandidateID   int64
	ApplicationID int64
	CandidateName string
	Email         string
	Terms         OfferTerms
	OfferDate     string
	Status        OfferStatus
	RespondedAt   int64
	Ctime         int64
	Utime         int64
}

type OfferFilter struct {
	Statuses    []OfferStatus
	CandidateID int64
	Offset      int
	Limit       int
}
