package isoval

import "strconv"

// Paths are dotted with zero-based indexes for repeated fields:
// "GrpHdr.SttlmInf.SttlmMtd", "Rpt[0].ReqHdlg.StsCd". A primitive reporting
// on itself uses the empty path; enclosing composites rebase it outward.

// JoinPath joins a parent segment with a child path. Index suffixes attach
// without a separator.
func JoinPath(base, child string) string {
	switch {
	case child == "":
		return base
	case base == "":
		return child
	case child[0] == '[':
		return base + child
	default:
		return base + "." + child
	}
}

// IndexSegment renders a repeated-field segment, e.g. IndexSegment("Rpt", 0)
// -> "Rpt[0]".
func IndexSegment(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// Rebase prefixes every issue path in err with the given segment. Codes,
// messages and params pass through unmodified; only the path grows. Non-Issues
// errors are wrapped as a parse_error at the segment.
func Rebase(err error, seg string) Issues {
	if err == nil {
		return nil
	}
	child, ok := AsIssues(err)
	if !ok {
		return Issues{{Path: seg, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(Issues, 0, len(child))
	for _, it := range child {
		it.Path = JoinPath(seg, it.Path)
		out = append(out, it)
	}
	return out
}
