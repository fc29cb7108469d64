// Copyright (C) 2019-2024 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package partitiontest

import (
	"hash/fnv"
	"os"
	"runtime"
	"strconv"
	"testing"
)

// PartitionTest checks if the current partition should run this test, and skips it if not.
// PARTITION_TOTAL and PARTITION_ID split a test run across several machines;
// when they are unset every test runs.
func PartitionTest(t testing.TB) {
	pt, found := os.LookupEnv("PARTITION_TOTAL")
	if !found {
		return
	}
	numberPartitions, err := strconv.Atoi(pt)
	if err != nil || numberPartitions <= 0 {
		t.Fatalf("PARTITION_TOTAL must be a positive number, got %q", pt)
	}
	pid := os.Getenv("PARTITION_ID")
	partitionID, err := strconv.Atoi(pid)
	if err != nil || partitionID < 0 || partitionID >= numberPartitions {
		t.Fatalf("PARTITION_ID must be in [0, %d), got %q", numberPartitions, pid)
	}

	_, file, _, _ := runtime.Caller(1)
	h := fnv.New32a()
	h.Write([]byte(file + ":" + t.Name()))
	if h.Sum32()%uint32(numberPartitions) != uint32(partitionID) {
		t.Skipf("test %s belongs to another partition", t.Name())
	}
}
