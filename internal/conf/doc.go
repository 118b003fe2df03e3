// Package conf resolves the application configuration from dotenv files and
// the process environment.
//
// # Usage
//
//	r := &conf.Resolver{
//	    Root:     root,
//	    TestMode: conf.DetectTestMode(env),
//	    Environ:  env,
//	}
//	cfg, _ := r.Read()
//	fmt.Println(cfg.Environment())
//
// # Load Order
//
// Sources are applied lowest precedence first:
//
//  1. .env.local, then .env, then .env.override; .env.sample only when none
//     of the three exist
//  2. the explicit path (MYPROJECT_DOTENV_PATH or --dotenv-path)
//  3. the process environment
//
// In test mode an existing .env.test replaces steps 1 and 2, and the
// environment is pinned to TEST. The process environment still overrides
// every other key.
//
// # Internal Architecture
//
//   - ResolveSources: pure function of (root, explicit path, test mode,
//     existence predicate) deciding which files apply and in what order.
//
//   - parseSource: parses dotenv or TOML content into string pairs.
//     Separate from loading for clean separation of I/O and parsing.
//
//   - Merge: pure layering of parsed sources and the process environment.
//
//   - Classify: maps the MYPROJECT_ENV value to an Environment.
//
//   - Resolver: orchestrates the above and returns an immutable Config.
package conf
