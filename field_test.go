// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorTypeStringCoversRoster(t *testing.T) {
	cases := map[MinorType]string{
		MinorTypeBit:            "Bit",
		MinorTypeTinyInt:        "TinyInt",
		MinorTypeUInt1:          "UInt1",
		MinorTypeSmallInt:       "SmallInt",
		MinorTypeUInt2:          "UInt2",
		MinorTypeInt:            "Int",
		MinorTypeUInt4:          "UInt4",
		MinorTypeBigInt:         "BigInt",
		MinorTypeUInt8:          "UInt8",
		MinorTypeFloat4:         "Float4",
		MinorTypeFloat8:         "Float8",
		MinorTypeDateDay:        "DateDay",
		MinorTypeDateMilli:      "DateMilli",
		MinorTypeTimeSec:        "TimeSec",
		MinorTypeTimeMilli:      "TimeMilli",
		MinorTypeTimeMicro:      "TimeMicro",
		MinorTypeTimeNano:       "TimeNano",
		MinorTypeTimeStampSec:   "TimeStampSec",
		MinorTypeTimeStampMilli: "TimeStampMilli",
		MinorTypeTimeStampMicro: "TimeStampMicro",
		MinorTypeTimeStampNano:  "TimeStampNano",
		MinorTypeIntervalYear:   "IntervalYear",
		MinorTypeIntervalDay:    "IntervalDay",
		MinorTypeDecimal:        "Decimal",
	}
	for mt, want := range cases {
		assert.Equal(t, want, mt.String())
	}
	assert.Equal(t, "Unknown", MinorType(255).String())
}
