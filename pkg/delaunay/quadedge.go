package delaunay

// Квад-ребро Гибаса-Стольфи (Guibas, Stolfi, ACM ToG 4(2), 1985).
// Используется только слиянием в разделяй и властвуй.

type quadEdge struct {
	e [4]qedge
}

// qedge - одно из четырех направленных ребер квада. r = 0, 2 - ребра
// триангуляции (org задан), r = 1, 3 - дуальные.
type qedge struct {
	q    *quadEdge
	r    int
	next *qedge
	org  Point
}

func makeEdge(org, dest Point) *qedge {
	q := &quadEdge{}
	for i := range q.e {
		q.e[i].q = q
		q.e[i].r = i
	}
	q.e[0].next = &q.e[0]
	q.e[1].next = &q.e[3]
	q.e[2].next = &q.e[2]
	q.e[3].next = &q.e[1]
	q.e[0].org = org
	q.e[2].org = dest
	return &q.e[0]
}

func (e *qedge) rot() *qedge    { return &e.q.e[(e.r+1)&3] }
func (e *qedge) sym() *qedge    { return &e.q.e[(e.r+2)&3] }
func (e *qedge) invRot() *qedge { return &e.q.e[(e.r+3)&3] }

func (e *qedge) onext() *qedge { return e.next }
func (e *qedge) oprev() *qedge { return e.rot().next.rot() }
func (e *qedge) lnext() *qedge { return e.invRot().next.rot() }
func (e *qedge) rprev() *qedge { return e.sym().next }

func (e *qedge) dest() Point { return e.sym().org }

func splice(a, b *qedge) {
	alpha := a.next.rot()
	beta := b.next.rot()
	a.next, b.next = b.next, a.next
	alpha.next, beta.next = beta.next, alpha.next
}

// connect добавляет ребро из a.dest в b.org так, что у a, нового ребра и b
// общая левая грань
func connect(a, b *qedge) *qedge {
	e := makeEdge(a.dest(), b.org)
	splice(e, a.lnext())
	splice(e.sym(), b)
	return e
}

func deleteEdge(e *qedge) {
	splice(e, e.oprev())
	splice(e.sym(), e.sym().oprev())
}

func rightOf(p Point, e *qedge) bool {
	return orient(p, e.dest(), e.org) > 0
}

func leftOf(p Point, e *qedge) bool {
	return orient(p, e.org, e.dest()) > 0
}

// faces обходит подразбиение от start и возвращает все треугольные грани,
// обходимые против часовой стрелки (внешняя грань обходится по часовой)
func faces(start *qedge) []Triangle {
	if start == nil {
		return nil
	}

	visited := make(map[*qedge]bool)
	seen := make(map[Triangle]bool)
	var result []Triangle

	stack := []*qedge{start, start.sym()}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[e] {
			continue
		}
		visited[e] = true

		if b := e.lnext(); b.lnext().lnext() == e {
			c := b.dest()
			if orient(e.org, e.dest(), c) > 0 {
				tri := NewTriangle(e.org, e.dest(), c)
				if !seen[tri] {
					seen[tri] = true
					result = append(result, tri)
				}
			}
		}

		stack = append(stack, e.onext(), e.sym())
	}
	return result
}
