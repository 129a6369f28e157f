package replacement

// satInc and satDec are small generic saturating-arithmetic helpers in the
// same spirit as the teacher's generic overflow checks: one function per
// operation, parameterized over the integer width, instead of a type per
// counter. PSEL, the SHCT entries, and RRPV all saturate this way.

// satInc increments v by one, clamping at ceiling.
func satInc[T uint32 | uint8](v, ceiling T) T {
	if v < ceiling {
		return v + 1
	}
	return v
}

// satDec decrements v by one, clamping at 0.
func satDec[T uint32 | uint8](v T) T {
	if v > 0 {
		return v - 1
	}
	return v
}
