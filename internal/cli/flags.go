package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	DBPath  string `long:"db-path" description:"Override the SQLite database path"`
	Lang    string `long:"lang" description:"Display language for this invocation (en, fr)"`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// ViewCommand — render the current timeline level.
type ViewCommand struct {
	globals *GlobalFlags
	version string
}

// DrillCommand — drill into a block of the current view.
type DrillCommand struct {
	Args struct {
		Block int `positional-arg-name:"block" description:"Block number as shown by view (1-based)"`
	} `positional-args:"yes" required:"yes"`

	globals *GlobalFlags
	version string
}

// BackCommand — jump back to a breadcrumb.
type BackCommand struct {
	Args struct {
		Index string `positional-arg-name:"index" description:"Breadcrumb index (0-based), or home"`
	} `positional-args:"yes" required:"yes"`

	globals *GlobalFlags
	version string
}

// HomeCommand — return to the full timeline.
type HomeCommand struct {
	globals *GlobalFlags
	version string
}

// AddCommand — record a historical event.
type AddCommand struct {
	Title       string `long:"title" description:"Event title (required)"`
	Year        string `long:"year" description:"Year of the event (required)"`
	BC          bool   `long:"bc" description:"The year is before Christ"`
	Month       string `long:"month" description:"Month (1-12)"`
	Day         string `long:"day" description:"Day of the month (1-31)"`
	Description string `long:"description" description:"Short description"`
	Category    string `long:"category" description:"general | war | politics | science | art | religion" default:"general"`
	Link        string `long:"link" description:"Absolute URL of an article"`

	globals *GlobalFlags
	version string
}

// ShowCommand — print the full detail of one event.
type ShowCommand struct {
	ID string `long:"id" description:"Event ID (required)"`

	globals *GlobalFlags
	version string
}

// SearchCommand — search events by keyword with filters.
type SearchCommand struct {
	From     int    `long:"from" description:"Earliest year (negative for BC)"`
	To       int    `long:"to" description:"Latest year (negative for BC)"`
	Category string `long:"category" description:"Filter by category"`
	Limit    int    `long:"limit" description:"Maximum results" default:"10"`
	Offset   int    `long:"offset" description:"Skip first N results" default:"0"`

	globals *GlobalFlags
	version string
}

// LangCommand — show or switch the display language.
type LangCommand struct {
	globals *GlobalFlags
	version string
}

// StatusCommand — show database statistics and session state.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}

// PurgeCommand — delete ALL events with safety confirmation.
type PurgeCommand struct {
	All   bool `long:"all" description:"Required flag to confirm purge intent"`
	Force bool `long:"force" description:"Skip safety confirmation prompt"`

	globals *GlobalFlags
	version string
}
