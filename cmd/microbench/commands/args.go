package commands

import "strings"

// listFlags take one or more values.
var listFlags = map[string]bool{
	"-f":           true,
	"--frameworks": true,
	"--filter":     true,
}

// ExpandListFlags rewrites every bare token following a list flag into another
// occurrence of that flag, so "-f a b --filter x y" becomes
// "-f a -f b --filter x --filter y". A token starting with "-" ends the list,
// and everything after "--" is left untouched.
func ExpandListFlags(args []string) []string {
	out := make([]string, 0, len(args))
	current := ""
	// pending is set while the list flag still waits for its first value.
	pending := false

	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		if strings.HasPrefix(arg, "-") && arg != "-" {
			current, pending = listFlagOf(arg)
			out = append(out, arg)
			continue
		}

		switch {
		case current == "":
			out = append(out, arg)
		case pending:
			out = append(out, arg)
			pending = false
		default:
			out = append(out, current, arg)
		}
	}

	return out
}

// listFlagOf returns the list flag named by arg and whether its first value is
// still to come. Inline forms such as "--filter=x" or "-fx" carry their first value.
func listFlagOf(arg string) (string, bool) {
	if listFlags[arg] {
		return arg, true
	}
	if name, _, ok := strings.Cut(arg, "="); ok && listFlags[name] {
		return name, false
	}
	if strings.HasPrefix(arg, "-f") && !strings.HasPrefix(arg, "--") {
		return "-f", false
	}
	return "", false
}
