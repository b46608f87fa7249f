// Command kleinianweb serves limit-set renders to a browser.
//
//	GET /        the parameter form.
//	GET /render  the PNG: ?re1=&im1=&re2=&im2=&n=&width=&height=&scheme=
//
// Parameter and construction failures answer 400 with the error text;
// failures inside the render answer 500. Logging goes through glog; pass
// -logtostderr to see requests.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golang/glog"

	"github.com/katalvlaran/kleinian/group"
	"github.com/katalvlaran/kleinian/limitset"
	"github.com/katalvlaran/kleinian/render"
)

// Hard caps keep a public instance from rendering itself to death.
const (
	maxPoints    = 1_000_000
	maxDimension = 4096
)

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>kleinian</title></head>
<body>
<h1>Kleinian limit sets</h1>
<form action="/render">
  <label>ta: <input name="re1" value="1.91" size="8"> + <input name="im1" value="0.05" size="8">i</label><br>
  <label>tb: <input name="re2" value="1.91" size="8"> + <input name="im2" value="-0.05" size="8">i</label><br>
  <label>points: <input name="n" value="200000" size="8"></label><br>
  <label>size: <input name="width" value="1024" size="5"> x <input name="height" value="1024" size="5"></label><br>
  <label>scheme: <select name="scheme">
    <option value="commutator">commutator</option>
    <option value="xxi">xxi</option>
    <option value="xii">xii</option>
  </select></label><br>
  <button>render</button>
</form>
<p>Try ta = tb = 2 for the Apollonian gasket.</p>
</body>
</html>
`

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()
	defer glog.Flush()

	http.HandleFunc("/", indexHandler)
	http.HandleFunc("/render", renderHandler)

	glog.Infof("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		glog.Exitf("server: %v", err)
	}
}

// indexHandler serves the static form.
func indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

// renderHandler runs the full pipeline for one request: parameters,
// generators, traversal, raster, PNG.
func renderHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	p, err := parseParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Trace parameters the recipes cannot serve are the client's to fix.
	q, err := group.Build(p.scheme, p.ta, p.tb)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pts, err := limitset.Generate(q, p.n, nil)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, limitset.ErrBadCount) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	img, err := render.RGBA(pts, p.width, p.height)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err = png.Encode(w, img); err != nil {
		glog.Errorf("encoding response: %v", err)
		return
	}
	glog.Infof("%s %s -> %d points, %dx%d, %s",
		r.Method, r.URL.RequestURI(), len(pts), p.width, p.height, time.Since(start))
}

// params is one render request after validation.
type params struct {
	ta, tb complex128
	n      int
	width  int
	height int
	scheme group.Scheme
}

// parseParams reads and bounds the render query. Every failure names the
// offending parameter so the client can fix the request. The second trace
// is required except for the single-trace x scheme, which ignores it.
func parseParams(r *http.Request) (params, error) {
	qs := r.URL.Query()
	p := params{scheme: group.ParseScheme(qs.Get("scheme"))}

	re1, err := floatParam(qs, "re1")
	if err != nil {
		return params{}, err
	}
	im1, err := floatParam(qs, "im1")
	if err != nil {
		return params{}, err
	}
	p.ta = complex(re1, im1)

	if p.scheme != group.SchemeX {
		re2, err := floatParam(qs, "re2")
		if err != nil {
			return params{}, err
		}
		im2, err := floatParam(qs, "im2")
		if err != nil {
			return params{}, err
		}
		p.tb = complex(re2, im2)
	}

	if p.n, err = intParam(qs, "n", 200_000, maxPoints); err != nil {
		return params{}, err
	}
	if p.width, err = intParam(qs, "width", 1024, maxDimension); err != nil {
		return params{}, err
	}
	if p.height, err = intParam(qs, "height", 1024, maxDimension); err != nil {
		return params{}, err
	}

	return p, nil
}

// floatParam parses a required float query parameter.
func floatParam(qs url.Values, name string) (float64, error) {
	v, err := strconv.ParseFloat(qs.Get(name), 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: %w", name, err)
	}

	return v, nil
}

// intParam parses an optional positive integer query parameter, capped.
func intParam(qs url.Values, name string, def, limit int) (int, error) {
	raw := qs.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: %w", name, err)
	}
	if v < 1 || v > limit {
		return 0, fmt.Errorf("parameter %s: %d out of range [1, %d]", name, v, limit)
	}

	return v, nil
}
