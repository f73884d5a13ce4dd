// Package taskhelp adds overloaded task registration and a generated help
// task to a task runner.
//
// Attach wraps a Host and registers a "help" task (also bound to "default")
// that lists every task with its description and options:
//
//	r, err := taskhelp.Attach(taskhelp.NewFlow(goyek.DefaultFlow, nil), taskhelp.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.MustRegister("test", "run tests", []string{"t"}, test)
//	r.MustRegister("test:race", "run tests with -race", testRace)
//
// Running the help task prints:
//
//	Usage: build [task]
//
//	Available Tasks
//	  default         Displays this help menu
//	  help            Displays this help menu
//	  t               run tests
//	  test            run tests
//	    test:race     run tests with -race
package taskhelp

// Attach decorates host with a Registrar and registers the help task through
// it under "help", "default", and cfg.Aliases.
// All later registrations should go through the returned Registrar.
func Attach(host Host, cfg Config) (*Registrar, error) {
	cfg = cfg.WithDefaults()

	r := NewRegistrar(host, cfg.Logger)
	lister := NewLister(r, cfg)
	if _, err := r.Register(HelpTaskName, cfg.Description, cfg.Aliases, Action(lister.run)); err != nil {
		return nil, err
	}
	return r, nil
}
