package optimize

// ID identifies one maintenance action.
type ID string

const (
	CleanTemp       ID = "clean-temp"
	EmptyRecycle    ID = "empty-recycle"
	OptimizeTCP     ID = "optimize-tcp"
	RestartAdapters ID = "restart-adapters"
	ShowWifi        ID = "show-wifi"
	CreateGodMode   ID = "create-godmode"
)

// CanonicalOrder is the fixed execution order for a run. Selection order
// never influences it; the orchestrator walks this list and runs whatever
// was selected.
var CanonicalOrder = []ID{
	CleanTemp,
	EmptyRecycle,
	OptimizeTCP,
	RestartAdapters,
	ShowWifi,
	CreateGodMode,
}

// Result is the outcome of one primitive invocation. Message is printed
// verbatim, multi-line blocks included.
type Result struct {
	OK      bool
	Message string
}

// Config is the per-run configuration threaded through every action.
type Config struct {
	DryRun    bool
	AssumeYes bool
}
