package ppn

// Some sample positions, used mostly for testing.

const (
	// WhiteStuck has nothing in White's base and White's last piece trapped
	// under Black, so White must pass whatever it throws.
	WhiteStuck = "-/-/B(1,0)/-/-/-/-/-/-/-/- 0/5 5/0 w"
	// ExactFinish has two white pieces heading home; a 3 takes the one on
	// tile 2 off exactly.
	ExactFinish = "-/-/W'/-/W'/-/-/-/-/-/- 0/6 4/0 w"
	// MidGame has a returning black piece holding a white prisoner.
	MidGame = "-/W/-/B'(1,0)/-/-/-/-/-/-/- 3/5 1/0 b"
	// NearTheEnd has pieces of both colors about to turn around.
	NearTheEnd = "W(0,2)/-/-/-/-/-/-/B/W/-/B' 3/2 1/0 w"
)
