package manifest

import (
	"github.com/arthur-debert/placer/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// parseTOML decodes a TOML manifest and returns the package names in
// document order
func parseTOML(data []byte) (map[string]interface{}, []string, error) {
	raw := make(map[string]interface{})
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to parse TOML manifest")
	}

	order, err := tomlPackageOrder(data)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to parse TOML manifest")
	}
	return raw, order, nil
}

// tomlPackageOrder walks the document expressions and records the first
// appearance of every pkgs.<name> key, whether it comes from a table
// header, a dotted key or an inline table
func tomlPackageOrder(data []byte) ([]string, error) {
	var (
		p     unstable.Parser
		table []string
		order []string
		seen  = make(map[string]bool)
	)

	add := func(path []string) {
		if len(path) < 2 || path[0] != "pkgs" || seen[path[1]] {
			return
		}
		seen[path[1]] = true
		order = append(order, path[1])
	}

	p.Reset(data)
	for p.NextExpression() {
		e := p.Expression()
		switch e.Kind {
		case unstable.Table, unstable.ArrayTable:
			table = keyPath(e.Key())
			add(table)
		case unstable.KeyValue:
			full := append(append([]string{}, table...), keyPath(e.Key())...)
			add(full)
			if len(full) == 1 && full[0] == "pkgs" && e.Value().Kind == unstable.InlineTable {
				it := e.Value().Children()
				for it.Next() {
					kv := it.Node()
					if kv.Kind == unstable.KeyValue {
						add(append([]string{"pkgs"}, keyPath(kv.Key())...))
					}
				}
			}
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}
	return order, nil
}

func keyPath(it unstable.Iterator) []string {
	var path []string
	for it.Next() {
		path = append(path, string(it.Node().Data))
	}
	return path
}
