package cli

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/yacchi/kasane"
)

// loadAll feeds each argument into the store in order. Arguments
// containing glob metacharacters expand through LoadGlob so quoted
// patterns work even when the shell does not expand them; everything
// else loads as a single file.
func loadAll(store *kasane.Store, args []string, log zerolog.Logger) error {
	for _, arg := range args {
		if isGlobPattern(arg) {
			log.Debug().Str("pattern", arg).Msg("loading glob")
			if err := store.LoadGlob(arg); err != nil {
				return err
			}
			continue
		}
		log.Debug().Str("file", arg).Msg("loading file")
		if err := store.Load(arg); err != nil {
			return err
		}
	}
	return nil
}

func isGlobPattern(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
