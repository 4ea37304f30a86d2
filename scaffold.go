package pathnavigator

import "go.uber.org/zap"

// DefaultProjectLayout is the conventional research-project skeleton
// ScaffoldProject creates under the root.
var DefaultProjectLayout = []string{"code", "data", "figures", "inputs", "outputs", "models"}

// Scaffold creates one subtree per name under the root. Names may nest
// with slashes ("data/raw"); existing directories are reused. The first
// failure aborts.
func (n *Navigator) Scaffold(names ...string) error {
	for _, name := range names {
		if _, err := n.MakeDir(name); err != nil {
			return err
		}
	}
	n.log.Info("scaffold complete", zap.Strings("layout", names))
	return nil
}

// ScaffoldProject creates the DefaultProjectLayout under the root.
func (n *Navigator) ScaffoldProject() error {
	return n.Scaffold(DefaultProjectLayout...)
}
