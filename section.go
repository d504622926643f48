package spool

// EnterSection logs title and an opening marker at the given level, then
// increases the shared indentation depth so lines logged inside the section
// render one level deeper. Every EnterSection must be paired with exactly one
// ExitSection, in reverse order of entry; only a depth count is kept, so the
// tracker cannot correct imbalance itself.
func (l *Logger) EnterSection(title string, level int64) {
	l.log(level, []any{title})
	l.log(level, []any{"{"})
	l.buf.indent()
}

// ExitSection decreases the indentation depth and logs the closing marker.
func (l *Logger) ExitSection(level int64) {
	l.buf.unindent()
	l.log(level, []any{"}"})
}

// Section enters a scoped region and returns its paired exit, for use with
// defer:
//
//	defer logger.Section("handshake", spool.LevelFine)()
func (l *Logger) Section(title string, level int64) func() {
	l.EnterSection(title, level)
	return func() {
		l.ExitSection(level)
	}
}
