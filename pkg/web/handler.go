package web

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/pointgen"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	"github.com/0x0FACED/go-delaunay/static"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	maxPoints = 500
	// полный перебор - O(n^4), больше не ждем
	maxBruteForcePoints = 120
)

type Handler struct {
	// Logger - общий лог сервера, логи отдельного запроса идут на страницу
	Logger *logger.ZapLogger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewHandler(log *logger.ZapLogger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		Logger: log,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type params struct {
	width, height int
	points        int
	algorithm     delaunay.Algorithm
	random        bool
}

func defaultParams() params {
	return params{width: 1000, height: 1000, points: 12, algorithm: delaunay.Incremental}
}

func parseParams(r *http.Request) (params, error) {
	p := defaultParams()
	if r.Method != http.MethodPost {
		return p, nil
	}
	if err := r.ParseForm(); err != nil {
		return p, errors.Wrap(err, "parse form")
	}

	ints := []struct {
		name string
		dst  *int
		min  int
		max  int
	}{
		{"width", &p.width, 1, 5000},
		{"height", &p.height, 1, 5000},
		{"points", &p.points, 1, maxPoints},
	}
	for _, f := range ints {
		v := r.FormValue(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, errors.Errorf("%s: %q is not a number", f.name, v)
		}
		if n < f.min || n > f.max {
			return p, errors.Errorf("%s must be in [%d, %d], got %d", f.name, f.min, f.max, n)
		}
		*f.dst = n
	}

	if v := r.FormValue("algorithm"); v != "" {
		alg, err := delaunay.ParseAlgorithm(v)
		if err != nil {
			return p, err
		}
		p.algorithm = alg
	}
	if p.algorithm == delaunay.BruteForce && p.points > maxBruteForcePoints {
		return p, errors.Errorf("brute force is limited to %d points", maxBruteForcePoints)
	}

	p.random = r.FormValue("random") == "true"
	return p, nil
}

func (h *Handler) generate(p params) []delaunay.Point {
	r := pointgen.Range{MaxX: float64(p.width), MaxY: float64(p.height)}
	if !p.random {
		return pointgen.Grid(p.points, r)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return pointgen.Random(h.rng, p.points, r)
}

// ServeHTTP - страница с формой, диаграммой и логами построения
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	p, err := parseParams(r)
	if err != nil {
		h.Logger.Error("[web] Неверные параметры", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	points := h.generate(p)

	// свой логгер на запрос, его вывод попадает в HTML
	reqLog := logger.NewCapture()
	defer reqLog.ClearLogs()

	started := time.Now()
	triangles := delaunay.Triangulate(points, p.algorithm, reqLog)
	h.Logger.Info("[web] Триангуляция построена", zap.Stringer("algorithm", p.algorithm),
		zap.Int("points", len(points)), zap.Int("triangles", len(triangles)), zap.Duration("took", time.Since(started)))

	scatter := render.Chart(points, triangles, fmt.Sprintf("Триангуляция Делоне (%s)", p.algorithm))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintln(w, static.Part1)

	if err := scatter.Render(w); err != nil {
		h.Logger.Error("[web] Ошибка рендеринга диаграммы", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)
	fmt.Fprintln(w, reqLog.HTML())
	fmt.Fprintln(w, static.Part3)
}

// Server - http.Server с обработчиком на /
func Server(addr string, log *logger.ZapLogger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/", NewHandler(log))
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
