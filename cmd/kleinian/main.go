// Command kleinian renders the limit set of a Kleinian group to a PNG file.
//
// Usage:
//
//	kleinian [flags] re1 im1 [re2 im2]
//
// The positional arguments are the real and imaginary parts of the two
// generator traces. The single-trace x scheme needs only the first pair.
//
//	kleinian -out gasket.png 2 0 2 0
//	kleinian -scheme xxi -n 500000 1.91 0.05 1.91 -0.05
//	kleinian -scheme xii -width 800 -height 800 3 0
//
// Logging goes through glog; pass -logtostderr to see progress.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang/glog"

	"github.com/katalvlaran/kleinian/group"
	"github.com/katalvlaran/kleinian/limitset"
	"github.com/katalvlaran/kleinian/render"
)

func main() {
	width := flag.Int("width", 1024, "raster width in pixels")
	height := flag.Int("height", 1024, "raster height in pixels")
	n := flag.Int("n", 200_000, "number of limit-set points to sample")
	out := flag.String("out", "kleinian.png", "output PNG path")
	tag := flag.String("scheme", "commutator", "generator scheme: commutator, xxi or xii")
	flag.Parse()
	defer glog.Flush()

	// 1) Traces come from the positional arguments.
	scheme := group.ParseScheme(*tag)
	ta, tb, err := parseTraces(flag.Args(), scheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] re1 im1 [re2 im2]\n", os.Args[0])
		flag.PrintDefaults()
		glog.Exitf("parsing traces: %v", err)
	}

	start := time.Now()
	glog.Infof("scheme=%s ta=%v tb=%v n=%d raster=%dx%d", scheme, ta, tb, *n, *width, *height)

	// 2) Generators, then the traversal.
	q, err := group.Build(scheme, ta, tb)
	if err != nil {
		glog.Exitf("building generators: %v", err)
	}

	pts, err := limitset.Generate(q, *n, nil)
	if err != nil {
		glog.Exitf("sampling limit set: %v", err)
	}
	glog.Infof("sampled %d points in %s", len(pts), time.Since(start))

	// 3) Rasterize and write.
	img, err := render.Gray(pts, *width, *height)
	if err != nil {
		glog.Exitf("rasterizing: %v", err)
	}
	if err = render.SavePNG(*out, img); err != nil {
		glog.Exitf("writing output: %v", err)
	}
	glog.Infof("wrote %s in %s total", *out, time.Since(start))
}

// parseTraces reads the generator traces from the positional arguments:
// re1 im1 re2 im2 for the two-trace schemes; the single-trace x scheme
// accepts just re1 im1, though a second pair is tolerated and ignored.
func parseTraces(args []string, scheme group.Scheme) (ta, tb complex128, err error) {
	want := 4
	if scheme == group.SchemeX && len(args) == 2 {
		want = 2
	}
	if len(args) != want {
		return 0, 0, fmt.Errorf("got %d trace components, want %d", len(args), want)
	}

	parts := make([]float64, len(args))
	for i, a := range args {
		if parts[i], err = strconv.ParseFloat(a, 64); err != nil {
			return 0, 0, fmt.Errorf("trace component %d: %w", i+1, err)
		}
	}

	ta = complex(parts[0], parts[1])
	if len(parts) == 4 {
		tb = complex(parts[2], parts[3])
	}

	return ta, tb, nil
}
