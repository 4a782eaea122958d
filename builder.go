package lantern

import "sort"

// Builder accumulates optional logging configuration through chained
// calls and applies it as the process-wide logger. Every field left unset
// resolves to its default at Apply time. The plural setters (WithColors,
// WithModuleLevels, WithOutputs) replace the whole collection; their
// singular counterparts merge into it.
//
//	err := lantern.NewBuilder(lantern.DefaultFormat()).
//		WithConfig(cfg).
//		WithModuleLevel("db", lantern.LevelDebug).
//		WithOutput(fileOut).
//		WithDebugBuild(debug).
//		Apply()
type Builder struct {
	colors       map[Level]string
	minLogLevel  *Level
	moduleLevels map[string]Level
	outputs      []Output
	format       FormatFunc
	debugBuild   bool
}

// NewBuilder returns a Builder with all optional fields unset. The format
// function is the one mandatory input; use DefaultFormat() for the
// standard line layout.
func NewBuilder(format FormatFunc) *Builder {
	return &Builder{format: format}
}

// WithConfig takes colors and the minimum level from a Config snapshot.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.WithColors(cfg.Colors)
	return b.WithMinLogLevel(cfg.MinLogLevel)
}

// WithColors replaces the whole color mapping.
func (b *Builder) WithColors(colors map[Level]string) *Builder {
	b.colors = make(map[Level]string, len(colors))
	for l, name := range colors {
		b.colors[l] = name
	}
	return b
}

// WithColor sets the color for one level, keeping the rest.
func (b *Builder) WithColor(level Level, colorName string) *Builder {
	if b.colors == nil {
		b.colors = make(map[Level]string)
	}
	b.colors[level] = colorName
	return b
}

// WithMinLogLevel sets the global minimum level.
func (b *Builder) WithMinLogLevel(min Level) *Builder {
	min = normLevel(min)
	b.minLogLevel = &min
	return b
}

// WithModuleLevels replaces all per-module level overrides.
func (b *Builder) WithModuleLevels(levels map[string]Level) *Builder {
	b.moduleLevels = make(map[string]Level, len(levels))
	for module, l := range levels {
		b.moduleLevels[module] = l
	}
	return b
}

// WithModuleLevel sets the override for one module; a repeated call for
// the same module wins over the earlier one.
func (b *Builder) WithModuleLevel(module string, level Level) *Builder {
	if b.moduleLevels == nil {
		b.moduleLevels = make(map[string]Level)
	}
	b.moduleLevels[module] = level
	return b
}

// WithOutputs replaces the whole sink list.
func (b *Builder) WithOutputs(outputs []Output) *Builder {
	b.outputs = make([]Output, len(outputs))
	copy(b.outputs, outputs)
	return b
}

// WithOutput appends one sink.
func (b *Builder) WithOutput(output Output) *Builder {
	b.outputs = append(b.outputs, output)
	return b
}

// WithFormat overrides the format function given to NewBuilder.
func (b *Builder) WithFormat(format FormatFunc) *Builder {
	b.format = format
	return b
}

// WithDebugBuild marks the build as a debug build, which raises the
// effective minimum level to at least Debug at setup time.
func (b *Builder) WithDebugBuild(debug bool) *Builder {
	b.debugBuild = debug
	return b
}

// Apply resolves every unset field from the package defaults and installs
// the result via Setup, whose error (if any) is returned unchanged. The
// builder is not meant to be reused after Apply.
func (b *Builder) Apply() error {
	colors := b.colors
	if colors == nil {
		colors = DefaultColors()
	}

	min := DefaultMinLevel()
	if b.minLogLevel != nil {
		min = *b.minLogLevel
	}

	outputs := b.outputs
	if outputs == nil {
		outputs = DefaultOutputs()
	}

	return Setup(Settings{
		Colors:       flattenColors(colors),
		MinLogLevel:  min,
		ModuleLevels: flattenModuleLevels(b.moduleLevels),
		Outputs:      outputs,
		Format:       b.format,
		DebugBuild:   b.debugBuild,
	})
}

// flattenModuleLevels turns the override map into an order-stable pair
// sequence, sorted by module name.
func flattenModuleLevels(levels map[string]Level) []ModuleLevel {
	pairs := make([]ModuleLevel, 0, len(levels))
	for module, l := range levels {
		pairs = append(pairs, ModuleLevel{Module: module, Level: l})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Module < pairs[j].Module })
	return pairs
}
