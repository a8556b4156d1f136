/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type EntryTestSuite struct {
	suite.Suite
	now time.Time
}

func TestEntrySuite(t *testing.T) {
	suite.Run(t, new(EntryTestSuite))
}

func (suite *EntryTestSuite) SetupTest() {
	suite.now = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
}

func (suite *EntryTestSuite) TestNewEntry() {
	entry := newEntry("value", time.Minute, true, suite.now)

	suite.Equal("value", entry.Value())
	suite.Equal(suite.now, entry.CreatedAt())
	suite.Equal(suite.now, entry.LastAccessedAt())
	suite.Equal(int64(0), entry.AccessCount())
}

func (suite *EntryTestSuite) TestIsExpired() {
	testCases := []struct {
		name     string
		ttl      time.Duration
		hasTTL   bool
		elapsed  time.Duration
		expected bool
	}{
		{name: "NoTTL", hasTTL: false, elapsed: 24 * time.Hour, expected: false},
		{name: "WithinTTL", ttl: time.Second, hasTTL: true, elapsed: 500 * time.Millisecond, expected: false},
		{name: "AtTTLBoundary", ttl: time.Second, hasTTL: true, elapsed: time.Second, expected: false},
		{name: "PastTTL", ttl: time.Second, hasTTL: true, elapsed: time.Second + time.Nanosecond, expected: true},
		{name: "ZeroTTL", ttl: 0, hasTTL: true, elapsed: time.Millisecond, expected: true},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			entry := newEntry(1, tc.ttl, tc.hasTTL, suite.now)
			suite.Equal(tc.expected, entry.IsExpired(suite.now.Add(tc.elapsed)))
		})
	}
}

func (suite *EntryTestSuite) TestTouch() {
	entry := newEntry("value", 0, false, suite.now)

	later := suite.now.Add(time.Second)
	suite.Equal("value", entry.Touch(later))
	entry.Touch(later.Add(time.Second))

	suite.Equal(int64(2), entry.AccessCount())
	suite.Equal(later.Add(time.Second), entry.LastAccessedAt())
	suite.Equal(suite.now, entry.CreatedAt())
}

func (suite *EntryTestSuite) TestRemainingTTL() {
	entry := newEntry("value", 10*time.Second, true, suite.now)
	suite.Equal(7*time.Second, entry.RemainingTTL(suite.now.Add(3*time.Second)))
	suite.Equal(time.Duration(0), entry.RemainingTTL(suite.now.Add(time.Minute)))

	noTTL := newEntry("value", 0, false, suite.now)
	suite.Equal(NoExpiry, noTTL.RemainingTTL(suite.now.Add(time.Hour)))
}

func (suite *EntryTestSuite) TestReplaceValueAndReset() {
	entry := newEntry("old", time.Second, true, suite.now)

	later := suite.now.Add(2 * time.Second)
	entry.ReplaceValue("new", later)
	entry.reset(time.Minute, true, later)

	suite.Equal("new", entry.Value())
	suite.Equal(int64(1), entry.AccessCount())
	suite.Equal(later, entry.CreatedAt())
	suite.False(entry.IsExpired(later.Add(30 * time.Second)))
}
