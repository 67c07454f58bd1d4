package notify

import "sync"

// Messages shown around a generator run.
const (
	InstallingDependenciesMessage = "Installing dependencies..."
	ProjectGeneratedMessage       = "The project has been successfully generated."
)

// GeneratorEvents tracks the lifecycle of one generator run for one UI session:
// the dependency install that follows scaffolding, and the final outcome.
type GeneratorEvents struct {
	n Notifier

	mu         sync.Mutex
	installing bool
	dismiss    func()
}

// NewGeneratorEvents creates the per-session tracker.
func NewGeneratorEvents(n Notifier) *GeneratorEvents {
	return &GeneratorEvents{n: n}
}

// DoGeneratorInstall marks the run as installing dependencies and shows a status
// until the run is done.
func (e *GeneratorEvents) DoGeneratorInstall() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.installing {
		return
	}
	e.installing = true
	e.dismiss = e.n.Status(InstallingDependenciesMessage)
}

// DoGeneratorDone ends the run. On success the target path is reported, otherwise
// message is shown as the failure.
func (e *GeneratorEvents) DoGeneratorDone(success bool, message, targetPath string) {
	e.mu.Lock()
	e.installing = false
	dismiss := e.dismiss
	e.dismiss = nil
	e.mu.Unlock()

	if dismiss != nil {
		dismiss()
	}

	if !success {
		e.n.Error(message)
		return
	}
	if targetPath != "" {
		e.n.Info(ProjectGeneratedMessage + " Location: " + targetPath)
		return
	}
	e.n.Info(ProjectGeneratedMessage)
}

// Installing reports whether dependencies are being installed for this session.
func (e *GeneratorEvents) Installing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.installing
}
