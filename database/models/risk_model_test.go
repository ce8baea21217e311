// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskScore(t *testing.T) {
	for severity := 1; severity <= 5; severity++ {
		for likelihood := 1; likelihood <= 5; likelihood++ {
			t.Run(fmt.Sprintf("should score %d x %d as %d before saving", severity, likelihood, severity*likelihood), func(t *testing.T) {
				risk := Risk{Severity: severity, Likelihood: likelihood, RiskScore: -1}

				assert.NoError(t, risk.BeforeSave(nil))
				assert.Equal(t, severity*likelihood, risk.RiskScore)
				assert.Equal(t, ClassifyRiskScore(severity*likelihood), risk.Level())
			})
		}
	}
}
