package parse

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/pressure/core"
)

// ParseJSON builds a graph from a JSON document of the form
//
//	{
//	  "start": "AA",
//	  "valves": [
//	    {"id": "AA", "flow": 0, "tunnels": ["DD", {"to": "BB", "cost": 2}]},
//	    ...
//	  ]
//	}
//
// "start" is optional; options passed by the caller are applied after it and
// therefore win. Tunnels are either plain IDs (cost 1) or objects carrying an
// explicit cost, which is how pre-collapsed networks are expressed. "yield"
// is accepted as an alias of "flow".
func ParseJSON(data []byte, opts ...core.BuilderOption) (*core.Graph, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrInvalidJSON)
	}

	var all []core.BuilderOption
	if start := doc.Get("start"); start.Exists() {
		if start.Type != gjson.String {
			return nil, fmt.Errorf("%w: start must be a string", ErrInvalidJSON)
		}
		all = append(all, core.WithStart(start.String()))
	}
	all = append(all, opts...)
	b := core.NewBuilder(all...)

	valves := doc.Get("valves")
	if !valves.IsArray() {
		return nil, fmt.Errorf("%w: valves must be an array", ErrInvalidJSON)
	}

	var err error
	valves.ForEach(func(key, v gjson.Result) bool {
		err = addValve(b, int(key.Int()), v)
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return g, nil
}

// addValve decodes one element of the valves array into b.
func addValve(b *core.Builder, idx int, v gjson.Result) error {
	if !v.IsObject() {
		return fmt.Errorf("%w: valves[%d] must be an object", ErrInvalidJSON, idx)
	}
	id := v.Get("id")
	if id.Type != gjson.String || id.String() == "" {
		return fmt.Errorf("%w: valves[%d].id must be a non-empty string", ErrInvalidJSON, idx)
	}
	flow := v.Get("flow")
	if !flow.Exists() {
		flow = v.Get("yield")
	}
	yield := 0
	if flow.Exists() {
		if flow.Type != gjson.Number || flow.Float() != float64(flow.Int()) {
			return fmt.Errorf("%w: valves[%d].flow must be an integer", ErrInvalidJSON, idx)
		}
		yield = int(flow.Int())
	}

	var edges []core.Edge
	tunnels := v.Get("tunnels")
	if tunnels.Exists() && !tunnels.IsArray() {
		return fmt.Errorf("%w: valves[%d].tunnels must be an array", ErrInvalidJSON, idx)
	}
	var err error
	tunnels.ForEach(func(key, t gjson.Result) bool {
		var e core.Edge
		e, err = decodeTunnel(t)
		if err != nil {
			err = fmt.Errorf("%w: valves[%d].tunnels[%d]: %v", ErrInvalidJSON, idx, key.Int(), err)
			return false
		}
		edges = append(edges, e)
		return true
	})
	if err != nil {
		return err
	}

	if err = b.AddNode(id.String(), yield, edges...); err != nil {
		return fmt.Errorf("parse: valves[%d]: %w", idx, err)
	}

	return nil
}

// decodeTunnel accepts "ID" or {"to": "ID", "cost": N}.
func decodeTunnel(t gjson.Result) (core.Edge, error) {
	if t.Type == gjson.String {
		return core.Tunnel(t.String()), nil
	}
	if !t.IsObject() {
		return core.Edge{}, errors.New("want string or object")
	}
	to := t.Get("to")
	if to.Type != gjson.String {
		return core.Edge{}, errors.New("to must be a string")
	}
	cost := core.DefaultCost
	if c := t.Get("cost"); c.Exists() {
		if c.Type != gjson.Number || c.Float() != float64(c.Int()) {
			return core.Edge{}, errors.New("cost must be an integer")
		}
		cost = int(c.Int())
	}

	return core.Edge{To: to.String(), Cost: cost}, nil
}
