package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/locomotion/config"
	"github.com/oomph-ac/locomotion/scenario"
	"github.com/oomph-ac/locomotion/worker"
	"github.com/sirupsen/logrus"
)

// The following program runs the scripted scenario of one or more configuration files and prints a summary
// line for each of them.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run runs the program and returns its exit code. Deferred cleanup, such as flushing Sentry, happens before
// the process exits.
func run(args []string, out io.Writer) int {
	flags := flag.NewFlagSet("locomotion", flag.ContinueOnError)
	confPath := flags.String("config", "config.toml", "path of the main configuration file, created if missing")
	ticks := flags.Int("ticks", 0, "number of ticks to run, overriding the configured count when positive")
	dt := flags.Float64("dt", 0, "tick length in seconds, overriding the configured length when positive")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	conf, err := config.Load(*confPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	if lvl, err := conf.LogLevel(); err != nil {
		logger.Warnf("invalid log level %q, using info", conf.Logging.Level)
	} else {
		logger.SetLevel(lvl)
	}

	if conf.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: conf.Sentry.DSN}); err != nil {
			logger.Errorf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	files := []config.File{conf}
	for _, path := range flags.Args() {
		c, err := config.Load(path)
		if err != nil {
			logger.Errorf("skipping %s: %v", path, err)
			continue
		}
		if c.Scenario.Name == "" || c.Scenario.Name == conf.Scenario.Name {
			c.Scenario.Name = path
		}
		files = append(files, c)
	}

	var (
		mu      sync.Mutex
		lines   = make([]string, len(files))
		failed  bool
		entry   = logrus.NewEntry(logger)
		pool    = worker.New(0, entry)
		runOpts = runOptions{ticks: *ticks, dt: float32(*dt)}
	)
	for i, c := range files {
		pool.Submit(func() {
			line, err := runScenario(c, runOpts, entry)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed = true
				line = fmt.Sprintf("%s: %v", c.Scenario.Name, err)
			}
			lines[i] = line
		})
	}
	pool.Close()

	for _, line := range lines {
		if line != "" {
			fmt.Fprintln(out, line)
		}
	}
	if failed || pool.Panics() > 0 {
		return 1
	}
	return 0
}

type runOptions struct {
	ticks int
	dt    float32
}

// runScenario builds the scene of c and runs its script, returning the summary line of the run.
func runScenario(c config.File, opts runOptions, log *logrus.Entry) (string, error) {
	scene, script, err := c.Scene()
	if err != nil {
		return "", err
	}
	ticks, dt := c.Scenario.Ticks, c.Scenario.TickLength
	if opts.ticks > 0 {
		ticks = opts.ticks
	}
	if opts.dt > 0 {
		dt = opts.dt
	}

	start := time.Now()
	res, err := scenario.NewRunner(scene, script, log).Run(ticks, dt)
	if err != nil {
		return "", err
	}
	log.WithField("scenario", res.Name).Debugf("ran %d ticks in %v", ticks, time.Since(start))
	return res.Summary(), nil
}
