// ==============================================================================================
// FILE: internal/trace/trace.go
// ==============================================================================================
// PACKAGE: trace
// PURPOSE: The opt-in diagnostic channel. The CLI's --verbose flag turns
//          this on so each pipeline stage (lex/parse/eval) can log what
//          it is doing; with the flag off, Logger is a no-op so normal
//          runs pay nothing for it. Kept strictly separate from the
//          bit-exact stderr error contract the CLI prints on failure.
// ==============================================================================================

package trace

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-wide diagnostic sink. Enable routes it to stderr
// at debug level; left alone it discards everything.
var Logger = zerolog.New(io.Discard).With().Timestamp().Logger()

// Enable redirects Logger to stderr at debug level, console-formatted for
// a human reading along with a run.
func Enable() {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	Logger = zerolog.New(console).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
