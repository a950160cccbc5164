package config

import "flag"

// RegisterFlags binds the options to command-line flags on fs.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.Int64Var(&o.Seed, "seed", o.Seed, "random seed for thief spawns (0 uses the clock)")
	fs.StringVar(&o.Scene, "scene", o.Scene, "first scene: title, game or quiz")
	fs.BoolVar(&o.Sound, "sound", o.Sound, "play sound effects")
	fs.StringVar(&o.QuestionsPath, "questions", o.QuestionsPath, "path to a JSON question bank")
	fs.StringVar(&o.LogPath, "log", o.LogPath, "terminal frontend log file (default: a new temp file)")
	fs.Float64Var(&o.WindowScale, "scale", o.WindowScale, "window size multiplier")
}

// ParseOptions reads options from args on top of the defaults.
func ParseOptions(name string, args []string) (Options, error) {
	opts := DefaultOptions()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	opts.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, opts.Validate()
}
