// Copyright 2026 entt-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command sortbench compares the algo sort strategies across input sizes.
//
// Usage:
//
//	sortbench -sizes 1000,100000 -trials 10
//	sortbench -pass-bits 16 -key-bits 32 -workers 4
//
// Each trial generates one random input and times every strategy on its own
// copy of it. Trials run concurrently on a worker pool; the sorts themselves
// stay sequential.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/pflag"
	"golang.org/x/sys/cpu"

	"github.com/dakom/entt/algo"
)

var (
	sizesFlag      = pflag.String("sizes", "1000,10000,100000", "Comma-separated input sizes")
	trials         = pflag.Int("trials", 5, "Trials per size; results are averaged")
	workers        = pflag.Int("workers", runtime.GOMAXPROCS(0), "Concurrent trial workers")
	seed           = pflag.Int64("seed", 1, "Base seed for input generation")
	passBits       = pflag.Uint("pass-bits", 8, "Radix bits per pass")
	keyBits        = pflag.Uint("key-bits", 32, "Radix total key width in bits")
	insertionLimit = pflag.Int("insertion-limit", 20000, "Skip insertion sort above this size")
)

// strategy names one timed sort over a private copy of the trial input.
type strategy struct {
	name string
	run  func(data []uint32)
}

func main() {
	pflag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		pflag.Usage()
		os.Exit(1)
	}

	radix, err := algo.NewRadix[uint32](*passBits, *keyBits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("sortbench %s/%s (avx2=%v avx512=%v neon=%v)\n",
		runtime.GOOS, runtime.GOARCH,
		cpu.X86.HasAVX2, cpu.X86.HasAVX512F, cpu.ARM64.HasASIMD)
	fmt.Printf("radix<%d,%d> (%d passes), %d trials, %d workers\n\n",
		*passBits, *keyBits, radix.Passes(), *trials, *workers)

	strategies := []strategy{
		{name: "std", run: func(data []uint32) {
			algo.StdSort(data, algo.Ascending[uint32]())
		}},
		{name: "insertion", run: func(data []uint32) {
			algo.InsertionSort(data, algo.Ascending[uint32]())
		}},
		{name: "radix", run: func(data []uint32) {
			radix.Sort(data, algo.Identity[uint32])
		}},
	}

	// Keys confined to the configured width keep every strategy producing
	// the same ordering.
	keyMask := uint32(uint64(1)<<min(*keyBits, 32) - 1)

	pool, err := ants.NewPool(*workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Release()

	// strategy/size -> *int64 cumulative nanoseconds.
	results := &hashmap.HashMap{}
	var wg sync.WaitGroup

	for _, size := range sizes {
		for trial := 0; trial < *trials; trial++ {
			wg.Add(1)
			task := func() {
				defer wg.Done()

				rng := rand.New(rand.NewSource(*seed + int64(size)*31 + int64(trial)))
				input := make([]uint32, size)
				for i := range input {
					input[i] = rng.Uint32() & keyMask
				}

				scratch := make([]uint32, size)
				for _, st := range strategies {
					if st.name == "insertion" && size > *insertionLimit {
						continue
					}
					copy(scratch, input)

					start := time.Now()
					st.run(scratch)
					elapsed := time.Since(start)

					cell, _ := results.GetOrInsert(st.name+"/"+strconv.Itoa(size), new(int64))
					atomic.AddInt64(cell.(*int64), int64(elapsed))
				}
			}
			if err := pool.Submit(task); err != nil {
				wg.Done()
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	}
	wg.Wait()

	report := treemap.NewWith(utils.IntComparator)
	for _, size := range sizes {
		var b strings.Builder
		for _, st := range strategies {
			cell, ok := results.Get(st.name + "/" + strconv.Itoa(size))
			if !ok {
				fmt.Fprintf(&b, "  %-10s %14s\n", st.name, "skipped")
				continue
			}
			avg := time.Duration(atomic.LoadInt64(cell.(*int64)) / int64(*trials))
			fmt.Fprintf(&b, "  %-10s %14v\n", st.name, avg)
		}
		report.Put(size, b.String())
	}

	report.Each(func(key, value interface{}) {
		fmt.Printf("n=%d\n%s", key, value)
	})
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid size %q", part)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
