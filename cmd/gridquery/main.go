package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/milk9111/gridtactics/levels"
	"github.com/milk9111/gridtactics/search"
	"golang.design/x/clipboard"
)

func main() {
	levelName := flag.String("level", "tactics", "level name in levels/ or a path to a .yaml file")
	mode := flag.String("mode", "path", "query to run: path, reach or range")
	from := flag.String("from", "", "start or origin cell as x,y (default: first unit of -side)")
	to := flag.String("to", "", "goal cell as x,y for -mode path")
	budget := flag.Float64("budget", 0, "movement budget for -mode reach (default: the unit's move)")
	hops := flag.Int("hops", 0, "hop limit for -mode range (default: the unit's reach)")
	sideName := flag.String("side", "friendly", "side of the acting unit: friendly or hostile")
	trace := flag.Bool("trace", false, "mark cells A* expanded")
	copyOut := flag.Bool("copy", false, "copy the rendered overlay to the clipboard")
	watch := flag.Bool("watch", false, "re-run the query whenever level files change")
	flag.Parse()

	side, ok := search.ParseSide(*sideName)
	if !ok {
		log.Fatalf("gridquery: unknown side %q", *sideName)
	}
	q := query{
		mode:   *mode,
		from:   *from,
		to:     *to,
		budget: *budget,
		hops:   *hops,
		side:   side,
		trace:  *trace,
	}

	if *copyOut {
		if err := clipboard.Init(); err != nil {
			log.Printf("gridquery: clipboard unavailable: %v", err)
			*copyOut = false
		}
	}

	runOnce := func() error {
		lvl, err := levels.Open(*levelName)
		if err != nil {
			return err
		}
		out, err := q.run(lvl)
		if err != nil {
			return err
		}
		fmt.Print(out)
		if *copyOut {
			clipboard.Write(clipboard.FmtText, []byte(out))
		}
		return nil
	}

	if err := runOnce(); err != nil {
		if !*watch {
			log.Fatal(err)
		}
		log.Print(err)
	}
	if !*watch {
		return
	}

	watcher, err := levels.NewWatcher(levels.WatchDirs(*levelName)...)
	if err != nil {
		log.Fatalf("gridquery: watch: %v", err)
	}
	defer watcher.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	for {
		select {
		case name, ok := <-watcher.Events:
			if !ok {
				return
			}
			log.Printf("gridquery: %s changed", name)
			if err := runOnce(); err != nil {
				log.Print(err)
			}
		case err, ok := <-watcher.Errors:
			if ok {
				log.Printf("gridquery: watch: %v", err)
			}
		case <-interrupt:
			return
		}
	}
}
