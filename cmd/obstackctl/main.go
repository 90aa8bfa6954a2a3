// Command obstackctl exercises an obstack arena from the outside: it can
// simulate a burst of request-scoped allocations, hammer an arena with a
// randomized alloc/dealloc workload, or serve its metrics over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/cleeus/obstack"
	"github.com/cleeus/obstack/internal/obsmetrics"
)

var capacityFlag = &cli.IntFlag{
	Name:  "capacity",
	Value: 1 << 16,
	Usage: "arena capacity in bytes",
}

// requestPayload stands in for the kind of short-lived, request-scoped
// value obstackctl demo is meant to simulate: a correlation ID plus a
// fixed-size scratch buffer.
type requestPayload struct {
	ID      uuid.UUID
	Payload [64]byte
}

func main() {
	app := &cli.App{
		Name:  "obstackctl",
		Usage: "exercise an obstack arena",
		Commands: []*cli.Command{
			demoCommand,
			stressCommand,
			serveCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var demoCommand = &cli.Command{
	Name:  "demo",
	Usage: "allocate and release a batch of UUID-tagged request contexts",
	Flags: []cli.Flag{
		capacityFlag,
		&cli.IntFlag{Name: "count", Value: 8, Usage: "number of simulated requests"},
	},
	Action: func(c *cli.Context) error {
		a, err := obstack.New(c.Int("capacity"), nil)
		if err != nil {
			return err
		}
		defer a.Release()

		count := c.Int("count")
		reqs := make([]*requestPayload, 0, count)
		for i := 0; i < count; i++ {
			r := obstack.Alloc[requestPayload](a)
			if r == nil {
				return fmt.Errorf("arena exhausted after %d requests", i)
			}
			r.ID = uuid.New()
			reqs = append(reqs, r)
			fmt.Printf("allocated request %s (arena size %d/%d)\n", r.ID, a.Size(), a.Capacity())
		}

		for i := len(reqs) - 1; i >= 0; i-- {
			a.Dealloc(unsafe.Pointer(reqs[i]))
			fmt.Printf("released request %s (arena size %d/%d)\n", reqs[i].ID, a.Size(), a.Capacity())
		}
		return nil
	},
}

var stressCommand = &cli.Command{
	Name:  "stress",
	Usage: "run a bursty randomized alloc/dealloc workload against one arena",
	Flags: []cli.Flag{
		capacityFlag,
		&cli.Int64Flag{Name: "seed", Value: 1, Usage: "PRNG seed for the workload generator"},
		&cli.IntFlag{Name: "iterations", Value: 100000},
	},
	Action: func(c *cli.Context) error {
		a, err := obstack.New(c.Int("capacity"), nil)
		if err != nil {
			return err
		}
		defer a.Release()

		rng := rand.New(rand.NewSource(c.Int64("seed")))
		live := make([]*[64]byte, 0, 1024)

		var allocs, deallocs, capacityMisses int
		for i := 0; i < c.Int("iterations"); i++ {
			if len(live) == 0 || rng.Intn(3) != 0 {
				p, ok := tryAlloc(a)
				if !ok {
					capacityMisses++
					a.DeallocAll()
					live = live[:0]
					continue
				}
				allocs++
				live = append(live, p)
				continue
			}
			idx := rng.Intn(len(live))
			a.Dealloc(unsafe.Pointer(live[idx]))
			live = append(live[:idx], live[idx+1:]...)
			deallocs++
		}

		m := a.Metrics()
		fmt.Printf("allocs=%d deallocs=%d capacity_misses=%d utilization=%.2f live_chunks=%d\n",
			allocs, deallocs, capacityMisses, m.Utilization(), m.LiveChunks)
		return nil
	},
}

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "expose /metrics for a background workload arena",
	Flags: []cli.Flag{
		capacityFlag,
		&cli.StringFlag{Name: "addr", Value: ":9090"},
		&cli.StringFlag{Name: "arena-name", Value: "obstackctl"},
	},
	Action: func(c *cli.Context) error {
		a, err := obstack.New(c.Int("capacity"), nil)
		if err != nil {
			return err
		}
		defer a.Release()

		name := c.String("arena-name")
		ctx, cancel := context.WithCancel(c.Context)
		defer cancel()
		go backgroundWorkload(ctx, a, name)

		mux := http.NewServeMux()
		mux.Handle("/metrics", obsmetrics.Handler())
		log.Printf("obstackctl serving metrics on %s", c.String("addr"))
		return http.ListenAndServe(c.String("addr"), mux)
	},
}

// tryAlloc allocates a fixed-size scratch buffer, reporting capacity
// exhaustion as ok == false instead of forcing every caller to nil-check.
func tryAlloc(a *obstack.Arena) (p *[64]byte, ok bool) {
	p = obstack.Alloc[[64]byte](a)
	return p, p != nil
}

func backgroundWorkload(ctx context.Context, a *obstack.Arena, name string) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	var live []*[64]byte
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if p, ok := tryAlloc(a); ok {
				live = append(live, p)
			} else if len(live) > 0 {
				a.Dealloc(unsafe.Pointer(live[len(live)-1]))
				live = live[:len(live)-1]
			}
			obsmetrics.Report(name, a.Metrics())
		}
	}
}
