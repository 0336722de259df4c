// seehuhn.de/go/rasterdev - an in-memory raster graphics engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bitcache

// The Modified Huffman run-length code tables below are the standard
// ITU-T T.4 terminating and makeup codes, shared by every Group 3/4
// fax codec (and consumed here to drive writeRun's Group 4 encoder).

var whiteTerm = [64]huff{
	{0x35, 8}, {0x07, 6}, {0x07, 4}, {0x08, 4}, {0x0B, 4}, {0x0C, 4}, {0x0E, 4}, {0x0F, 4},
	{0x13, 5}, {0x14, 5}, {0x07, 5}, {0x08, 5}, {0x08, 6}, {0x03, 6}, {0x34, 6}, {0x35, 6},
	{0x2A, 6}, {0x2B, 6}, {0x27, 7}, {0x0C, 7}, {0x08, 7}, {0x17, 7}, {0x03, 7}, {0x04, 7},
	{0x28, 7}, {0x2B, 7}, {0x13, 7}, {0x24, 7}, {0x18, 7}, {0x02, 8}, {0x03, 8}, {0x1A, 8},
	{0x1B, 8}, {0x12, 8}, {0x13, 8}, {0x14, 8}, {0x15, 8}, {0x16, 8}, {0x17, 8}, {0x28, 8},
	{0x29, 8}, {0x2A, 8}, {0x2B, 8}, {0x2C, 8}, {0x2D, 8}, {0x04, 8}, {0x05, 8}, {0x0A, 8},
	{0x0B, 8}, {0x52, 8}, {0x53, 8}, {0x54, 8}, {0x55, 8}, {0x24, 8}, {0x25, 8}, {0x58, 8},
	{0x59, 8}, {0x5A, 8}, {0x5B, 8}, {0x4A, 8}, {0x4B, 8}, {0x32, 8}, {0x33, 8}, {0x34, 8},
}

var blackTerm = [64]huff{
	{0x37, 10}, {0x02, 3}, {0x03, 2}, {0x02, 2}, {0x03, 3}, {0x03, 4}, {0x02, 4}, {0x03, 5},
	{0x05, 6}, {0x04, 6}, {0x04, 7}, {0x05, 7}, {0x07, 7}, {0x04, 8}, {0x07, 8}, {0x18, 9},
	{0x17, 10}, {0x18, 10}, {0x08, 10}, {0x67, 11}, {0x68, 11}, {0x6C, 11}, {0x37, 11}, {0x28, 11},
	{0x17, 11}, {0x18, 11}, {0xCA, 12}, {0xCB, 12}, {0xCC, 12}, {0xCD, 12}, {0x68, 12}, {0x69, 12},
	{0x6A, 12}, {0x6B, 12}, {0xD2, 12}, {0xD3, 12}, {0xD4, 12}, {0xD5, 12}, {0xD6, 12}, {0xD7, 12},
	{0x6C, 12}, {0x6D, 12}, {0xDA, 12}, {0xDB, 12}, {0x54, 12}, {0x55, 12}, {0x56, 12}, {0x57, 12},
	{0x64, 12}, {0x65, 12}, {0x52, 12}, {0x53, 12}, {0x24, 12}, {0x37, 12}, {0x38, 12}, {0x27, 12},
	{0x28, 12}, {0x58, 12}, {0x59, 12}, {0x2B, 12}, {0x2C, 12}, {0x5A, 12}, {0x66, 12}, {0x67, 12},
}

var whiteMakeup = map[int]huff{
	64: {0x1B, 5}, 128: {0x12, 5}, 192: {0x17, 6}, 256: {0x37, 7},
	320: {0x36, 8}, 384: {0x37, 8}, 448: {0x64, 8}, 512: {0x65, 8},
	576: {0x68, 8}, 640: {0x67, 8}, 704: {0xCC, 9}, 768: {0xCD, 9},
	832: {0xD2, 9}, 896: {0xD3, 9}, 960: {0xD4, 9}, 1024: {0xD5, 9},
	1088: {0xD6, 9}, 1152: {0xD7, 9}, 1216: {0xD8, 9}, 1280: {0xD9, 9},
	1344: {0xDA, 9}, 1408: {0xDB, 9}, 1472: {0x98, 9}, 1536: {0x99, 9},
	1600: {0x9A, 9}, 1664: {0x18, 6}, 1728: {0x9B, 9},
}

var blackMakeup = map[int]huff{
	64: {0x0F, 10}, 128: {0xC8, 12}, 192: {0xC9, 12}, 256: {0x5B, 12},
	320: {0x33, 12}, 384: {0x34, 12}, 448: {0x35, 12}, 512: {0x6C, 13},
	576: {0x6D, 13}, 640: {0x4A, 13}, 704: {0x4B, 13}, 768: {0x4C, 13},
	832: {0x4D, 13}, 896: {0x72, 13}, 960: {0x73, 13}, 1024: {0x74, 13},
	1088: {0x75, 13}, 1152: {0x76, 13}, 1216: {0x77, 13}, 1280: {0x52, 13},
	1344: {0x53, 13}, 1408: {0x54, 13}, 1472: {0x55, 13}, 1536: {0x5A, 13},
	1600: {0x5B, 13}, 1664: {0x64, 13}, 1728: {0x65, 13},
}

// extMakeup is the shared extended makeup table for runs of 1792
// pixels or more, used by both colors.
var extMakeup = map[int]huff{
	1792: {0x08, 11}, 1856: {0x0C, 11}, 1920: {0x0D, 11}, 1984: {0x12, 12},
	2048: {0x13, 12}, 2112: {0x14, 12}, 2176: {0x15, 12}, 2240: {0x16, 12},
	2304: {0x17, 12}, 2368: {0x1C, 12}, 2432: {0x1D, 12}, 2496: {0x1E, 12},
	2560: {0x1F, 12},
}
