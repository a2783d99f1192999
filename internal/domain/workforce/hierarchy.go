package workforce

import "sort"

// Hierarchy is an id-keyed arena of job titles for one project. The parent
// link graph must stay acyclic; SetParent refuses any assignment that would
// close a loop.
type Hierarchy struct {
	titles map[uint]*JobTitle
}

// NewHierarchy builds an arena from the given titles.
func NewHierarchy(titles []*JobTitle) *Hierarchy {
	arena := make(map[uint]*JobTitle, len(titles))
	for _, t := range titles {
		arena[t.ID()] = t
	}
	return &Hierarchy{titles: arena}
}

// Get returns the title with the given id, or nil.
func (h *Hierarchy) Get(id uint) *JobTitle {
	return h.titles[id]
}

// SetParent assigns a reporting parent to a title. It fails when either id
// is unknown, when the title would report to itself, or when the assignment
// would create a cycle in the parent graph.
func (h *Hierarchy) SetParent(titleID uint, parentID *uint) error {
	title, ok := h.titles[titleID]
	if !ok {
		return ErrJobTitleNotFound
	}

	if parentID == nil {
		title.setParent(nil)
		return nil
	}

	if _, ok := h.titles[*parentID]; !ok {
		return ErrJobTitleNotFound
	}
	if *parentID == titleID {
		return ErrHierarchyCycle
	}
	if h.wouldCreateCycle(titleID, *parentID) {
		return ErrHierarchyCycle
	}

	title.setParent(parentID)
	return nil
}

// wouldCreateCycle walks up from the candidate parent; if the walk reaches
// titleID the assignment closes a loop. The walk is bounded by the arena
// size, so a pre-existing corrupt cycle cannot hang it.
func (h *Hierarchy) wouldCreateCycle(titleID, parentID uint) bool {
	current := parentID
	for steps := 0; steps <= len(h.titles); steps++ {
		node, ok := h.titles[current]
		if !ok || node.ParentID() == nil {
			return false
		}
		if *node.ParentID() == titleID {
			return true
		}
		current = *node.ParentID()
	}
	// Walk exceeded the arena size: the existing graph already loops.
	return true
}

// TreeNode is one node of the organigram.
type TreeNode struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name"`
	Level    SeniorityLevel `json:"level"`
	Children []*TreeNode    `json:"children"`
}

// Roots returns the titles with no reporting parent, ordered by name.
func (h *Hierarchy) Roots() []*JobTitle {
	var roots []*JobTitle
	for _, t := range h.titles {
		if t.ParentID() == nil {
			roots = append(roots, t)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].Name() < roots[j].Name() })
	return roots
}

// BuildTree builds the organigram rooted at the given title. Titles whose
// parent link points at a missing record are ignored; a corrupt cycle in
// stored data cannot recurse forever because each node is visited once.
func (h *Hierarchy) BuildTree(rootID uint) *TreeNode {
	root, ok := h.titles[rootID]
	if !ok {
		return nil
	}

	childrenOf := make(map[uint][]*JobTitle)
	for _, t := range h.titles {
		if t.ParentID() != nil {
			childrenOf[*t.ParentID()] = append(childrenOf[*t.ParentID()], t)
		}
	}
	for _, siblings := range childrenOf {
		sort.Slice(siblings, func(i, j int) bool { return siblings[i].Name() < siblings[j].Name() })
	}

	visited := make(map[uint]bool)
	var build func(t *JobTitle) *TreeNode
	build = func(t *JobTitle) *TreeNode {
		if visited[t.ID()] {
			return nil
		}
		visited[t.ID()] = true

		node := &TreeNode{
			ID:       t.ID(),
			Name:     t.Name(),
			Level:    t.Level(),
			Children: []*TreeNode{},
		}
		for _, child := range childrenOf[t.ID()] {
			if n := build(child); n != nil {
				node.Children = append(node.Children, n)
			}
		}
		return node
	}

	return build(root)
}
