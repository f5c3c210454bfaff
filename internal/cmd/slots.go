package cmd

// slot is one position in a command's left-to-right argument grammar.
// Arguments fill slots strictly in order, each at most once; the fill
// function validates the value immediately on assignment. A required
// slot left empty at end-of-arguments yields "<missing> not specified."
type slot struct {
	missing string // diagnostic noun for a required slot; "" = optional
	fill    func(arg string) error
	filled  bool
}

// fillSlots runs the shared argument state machine over args.
// Any argument beyond the last slot is an invalid parameter.
func fillSlots(args []string, slots []*slot) error {
	for _, arg := range args {
		var next *slot
		for _, s := range slots {
			if !s.filled {
				next = s
				break
			}
		}
		if next == nil {
			return paramErrorf("Invalid parameter '%s'.", arg)
		}
		if err := next.fill(arg); err != nil {
			return err
		}
		next.filled = true
	}

	for _, s := range slots {
		if !s.filled && s.missing != "" {
			return paramErrorf("%s not specified.", s.missing)
		}
	}
	return nil
}
