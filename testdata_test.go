// Copyright (c) 2025 The segrtree Authors
// SPDX-License-Identifier: MIT

package segrtree

// canonical100 is a fixed 100-rectangle dataset, shared across the
// scenario tests below to check every index variant against the same
// brute-force answer.
func canonical100() []Rect {
	return []Rect{
		NewRect(8, 62, 11, 66),
		NewRect(57, 17, 57, 19),
		NewRect(76, 26, 79, 29),
		NewRect(36, 56, 38, 56),
		NewRect(92, 77, 96, 80),
		NewRect(87, 70, 90, 74),
		NewRect(43, 41, 47, 43),
		NewRect(0, 58, 2, 62),
		NewRect(76, 86, 80, 89),
		NewRect(27, 13, 27, 15),
		NewRect(71, 63, 75, 67),
		NewRect(25, 2, 27, 2),
		NewRect(87, 6, 88, 6),
		NewRect(22, 90, 23, 93),
		NewRect(22, 89, 22, 93),
		NewRect(57, 11, 61, 13),
		NewRect(61, 55, 63, 56),
		NewRect(17, 85, 21, 87),
		NewRect(33, 43, 37, 43),
		NewRect(6, 1, 7, 3),
		NewRect(80, 87, 80, 87),
		NewRect(23, 50, 26, 52),
		NewRect(58, 89, 58, 89),
		NewRect(12, 30, 15, 34),
		NewRect(32, 58, 36, 61),
		NewRect(41, 84, 44, 87),
		NewRect(44, 18, 44, 19),
		NewRect(13, 63, 15, 67),
		NewRect(52, 70, 54, 74),
		NewRect(57, 59, 58, 59),
		NewRect(17, 90, 20, 92),
		NewRect(48, 53, 52, 56),
		NewRect(2, 68, 92, 72),
		NewRect(26, 52, 30, 52),
		NewRect(56, 23, 57, 26),
		NewRect(88, 48, 88, 48),
		NewRect(66, 13, 67, 15),
		NewRect(7, 82, 8, 86),
		NewRect(46, 68, 50, 68),
		NewRect(37, 33, 38, 36),
		NewRect(6, 15, 8, 18),
		NewRect(85, 36, 89, 38),
		NewRect(82, 45, 84, 48),
		NewRect(12, 2, 16, 3),
		NewRect(26, 15, 26, 16),
		NewRect(55, 23, 59, 26),
		NewRect(76, 37, 79, 39),
		NewRect(86, 74, 90, 77),
		NewRect(16, 75, 18, 78),
		NewRect(44, 18, 45, 21),
		NewRect(52, 67, 54, 71),
		NewRect(59, 78, 62, 78),
		NewRect(24, 5, 24, 8),
		NewRect(64, 80, 64, 83),
		NewRect(66, 55, 70, 55),
		NewRect(0, 17, 2, 19),
		NewRect(15, 71, 18, 74),
		NewRect(87, 57, 87, 59),
		NewRect(6, 34, 7, 37),
		NewRect(34, 30, 37, 32),
		NewRect(51, 19, 53, 19),
		NewRect(72, 51, 73, 55),
		NewRect(29, 45, 30, 45),
		NewRect(94, 94, 96, 95),
		NewRect(7, 22, 11, 24),
		NewRect(86, 45, 87, 48),
		NewRect(33, 62, 34, 65),
		NewRect(18, 10, 21, 14),
		NewRect(64, 66, 67, 67),
		NewRect(64, 25, 65, 28),
		NewRect(27, 4, 31, 6),
		NewRect(84, 4, 85, 5),
		NewRect(48, 80, 50, 81),
		NewRect(1, 61, 3, 61),
		NewRect(71, 89, 74, 92),
		NewRect(40, 42, 43, 43),
		NewRect(27, 64, 28, 66),
		NewRect(46, 26, 50, 26),
		NewRect(53, 83, 57, 87),
		NewRect(14, 75, 15, 79),
		NewRect(31, 45, 34, 45),
		NewRect(89, 84, 92, 88),
		NewRect(84, 51, 85, 53),
		NewRect(67, 87, 67, 89),
		NewRect(39, 26, 43, 27),
		NewRect(47, 61, 47, 63),
		NewRect(23, 49, 25, 53),
		NewRect(12, 3, 14, 5),
		NewRect(16, 50, 19, 53),
		NewRect(63, 80, 64, 84),
		NewRect(22, 63, 22, 64),
		NewRect(26, 66, 29, 66),
		NewRect(2, 15, 3, 15),
		NewRect(74, 77, 77, 79),
		NewRect(64, 11, 68, 11),
		NewRect(38, 4, 39, 8),
		NewRect(83, 73, 87, 77),
		NewRect(85, 52, 89, 56),
		NewRect(74, 60, 76, 63),
		NewRect(62, 66, 65, 67),
	}
}

// eightRects is a small fixed fixture used to exercise a degree-4 tree
// with several levels of real structure.
func eightRects() []Rect {
	return []Rect{
		NewRect(7, 44, 8, 48),
		NewRect(25, 48, 35, 55),
		NewRect(98, 46, 99, 56),
		NewRect(58, 65, 73, 79),
		NewRect(43, 40, 44, 45),
		NewRect(97, 87, 100, 91),
		NewRect(92, 46, 108, 57),
		NewRect(7.1, 48, 10, 56),
	}
}

func bruteForce(rects []Rect, q Rect) []int {
	var out []int
	for i, r := range rects {
		if r.Intersects(q) {
			out = append(out, i)
		}
	}
	return out
}
