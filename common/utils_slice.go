/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

import "encoding/binary"

// GetShortLE gets a short value from a byte array in little endian format.
func GetShortLE(array []byte, offset int) int {
	return int(array[offset]&0xFF) | (int(array[offset+1]&0xFF) << 8)
}

// PutShortLE puts a short value into a byte array in little endian format.
func PutShortLE(array []byte, offset int, value int) {
	array[offset] = byte(value)
	array[offset+1] = byte(value >> 8)
}

// ReadUint32sLE decodes data as consecutive little endian uint32 values.
// A trailing partial word is ignored.
func ReadUint32sLE(data []byte) []uint32 {
	numItems := len(data) / 4
	values := make([]uint32, numItems)
	for i := 0; i < numItems; i++ {
		values[i] = binary.LittleEndian.Uint32(data[4*i:])
	}
	return values
}

// ReadUint32sWithIndex decodes a little endian 2-byte index followed by uint32
// values. It reports false when data is too short for the index or the index
// does not address one of the values.
func ReadUint32sWithIndex(data []byte) ([]uint32, int, bool) {
	if len(data) < 2 {
		return nil, 0, false
	}
	k := GetShortLE(data, 0)
	values := ReadUint32sLE(data[2:])
	if k >= len(values) {
		return nil, 0, false
	}
	return values, k, true
}

// PutUint32sLE is the inverse of ReadUint32sLE.
func PutUint32sLE(values []uint32) []byte {
	bytes := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(bytes[4*i:], v)
	}
	return bytes
}
