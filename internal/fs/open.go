package fs

// Launcher runs the external programs used to open files.
type Launcher interface {
	// Edit runs the configured text editor on path and waits for it.
	Edit(path string) error
	// OpenDetached hands path to the generic opener without waiting.
	OpenDetached(path string) error
}

// OpenKind is the action chosen for opening an entry.
type OpenKind int

const (
	OpenChangeDirectory OpenKind = iota
	OpenEdit
	OpenExternal
)

func (k OpenKind) String() string {
	switch k {
	case OpenChangeDirectory:
		return "change directory"
	case OpenEdit:
		return "edit"
	case OpenExternal:
		return "open external"
	default:
		return "unknown"
	}
}

// OpenPlan describes how an entry will be opened, without doing it.
type OpenPlan struct {
	Kind OpenKind
	Name string
	Path string
}

// PlanOpen decides how the named child opens: directories are entered,
// text files go to the editor and everything else to the generic opener.
func (m *Model) PlanOpen(name string) (OpenPlan, error) {
	entryType, err := m.TypeOf(name)
	if err != nil {
		return OpenPlan{}, err
	}
	childPath, err := m.PathOf(name)
	if err != nil {
		return OpenPlan{}, err
	}

	plan := OpenPlan{Name: name, Path: childPath}
	switch {
	case entryType == Directory:
		plan.Kind = OpenChangeDirectory
	case m.classifier.Classify(childPath) == MimeText:
		plan.Kind = OpenEdit
	default:
		plan.Kind = OpenExternal
	}
	return plan, nil
}

// Open opens the named child. Directories are entered through
// ChangeDirectory; files are handed to launcher. Launcher failures are
// returned but leave the model unchanged.
func (m *Model) Open(name string, launcher Launcher) error {
	plan, err := m.PlanOpen(name)
	if err != nil {
		return err
	}
	return m.Execute(plan, launcher)
}

// Execute carries out a plan produced by PlanOpen.
func (m *Model) Execute(plan OpenPlan, launcher Launcher) error {
	switch plan.Kind {
	case OpenChangeDirectory:
		return m.ChangeDirectory(plan.Name)
	case OpenEdit:
		if launcher == nil {
			return NewError(KindProcessLaunch, "edit", plan.Path, nil)
		}
		return launcher.Edit(plan.Path)
	default:
		if launcher == nil {
			return NewError(KindProcessLaunch, "open", plan.Path, nil)
		}
		return launcher.OpenDetached(plan.Path)
	}
}
