// Package logger adapts common logging libraries to pagetree.Logger.
//
// The standard library's *slog.Logger already satisfies pagetree.Logger and
// needs no adapter.
//
// Example with zap:
//
//	zapLogger, _ := zap.NewProduction()
//	tree, err := pagetree.New[pagetree.CustomerKey](
//	    pagetree.CustomerKeyCodec{},
//	    pagetree.WithLogger(logger.NewZap(zapLogger)),
//	)
package logger

// fieldsFromArgs pairs alternating key/value arguments. Non-string keys and
// a trailing unpaired argument are dropped.
func fieldsFromArgs(args []any) map[string]any {
	fields := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			fields[key] = args[i+1]
		}
	}
	return fields
}
