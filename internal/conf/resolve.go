package conf

// baseChain lists the base chain kinds in application order, lowest
// precedence first.
var baseChain = []Kind{KindLocal, KindBase, KindOverride}

// ResolveSources decides which configuration files apply and in what order,
// earliest (lowest precedence) first. Every returned source exists according
// to exists. The process environment is not included; Merge applies it last.
//
// The returned candidates contain every path that was probed, with Exists
// filled in, for diagnostics. A missing explicit path yields a
// *MissingSourceWarning in warnings.
func ResolveSources(root, explicit string, testMode bool, exists func(string) bool) (sources, candidates []ConfigSource, warnings []error) {
	paths := candidatePaths(root, explicit)

	probed := make(map[Kind]ConfigSource, len(paths))
	for _, kind := range []Kind{KindTest, KindLocal, KindBase, KindOverride, KindSample, KindExplicitPath} {
		path, ok := paths[kind]
		if !ok {
			continue
		}
		src := ConfigSource{Kind: kind, Path: path, Exists: exists(path)}
		probed[kind] = src
		candidates = append(candidates, src)
	}

	// The test file, when present in test mode, is the only file source.
	if testMode && probed[KindTest].Exists {
		return []ConfigSource{probed[KindTest]}, candidates, nil
	}

	for _, kind := range baseChain {
		if probed[kind].Exists {
			sources = append(sources, probed[kind])
		}
	}
	if len(sources) == 0 && probed[KindSample].Exists {
		sources = append(sources, probed[KindSample])
	}

	if ex, ok := probed[KindExplicitPath]; ok {
		if ex.Exists {
			sources = append(sources, ex)
		} else {
			warnings = append(warnings, &MissingSourceWarning{Source: ex})
		}
	}

	return sources, candidates, warnings
}
