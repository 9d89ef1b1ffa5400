package logbook

import (
	"encoding/xml"
	"strings"
)

const (
	minosStreamOpen  = "<stream:stream"
	minosStreamClose = "</stream:stream>"

	minosNamespaceRPC    = "minos:iq:rpc"
	minosNamespaceClient = "minos:client"

	minosQSOMethod = "MinosLogQSO"
)

// minosNode is a generic XML tree node used to walk the Minos RPC structure
// without declaring the full schema.
type minosNode struct {
	XMLName xml.Name
	Text    string      `xml:",chardata"`
	Nodes   []minosNode `xml:",any"`
}

func (n *minosNode) child(space, local string) *minosNode {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Space == space && n.Nodes[i].XMLName.Local == local {
			return &n.Nodes[i]
		}
	}
	return nil
}

// parseMinos reads a Minos XML event stream. The opening stream element is
// located by literal search (a missing closing tag is synthesized), then the
// cleaned buffer is parsed as XML and every namespaced iq element is visited
// depth-first. An iq element qualifies when its query/methodCall names the
// MinosLogQSO method and the parameter struct carries a non-blank callRx.
//
// Fixed contract for the field bindings: locator = locRx, exchange =
// exchangeRx, comment = commentsTx joined with commentsRx by " | " when both
// are present and differ.
//
// Progress is proportional to the count of iq elements visited.
func parseMinos(data []byte, emit func(Record), progress ProgressFunc) error {
	content := string(data)

	streamStart := strings.Index(content, minosStreamOpen)
	if streamStart < 0 {
		return &FormatError{Reason: "invalid Minos file: no stream element found"}
	}

	clean := content[streamStart:]
	if !strings.Contains(clean, minosStreamClose) {
		clean += minosStreamClose
	}

	var root minosNode
	if err := xml.Unmarshal([]byte(clean), &root); err != nil {
		return &ParseError{Err: err}
	}

	var iqs []*minosNode
	collectIQElements(&root, &iqs)
	if len(iqs) == 0 {
		return &EmptyResultError{}
	}

	emitted := 0
	for i, iq := range iqs {
		progress(float64(i+1) / float64(len(iqs)) * 100)

		values, ok := minosQSOValues(iq)
		if !ok {
			continue
		}

		callsign := strings.TrimSpace(values["callRx"])
		if callsign == "" {
			continue
		}

		// Combine comments if they exist and are different
		var comments []string
		if tx := values["commentsTx"]; tx != "" {
			comments = append(comments, tx)
		}
		if rx := values["commentsRx"]; rx != "" && rx != values["commentsTx"] {
			comments = append(comments, rx)
		}

		emit(Record{
			Callsign: callsign,
			Locator:  strings.TrimSpace(values["locRx"]),
			Exchange: strings.TrimSpace(values["exchangeRx"]),
			Comment:  strings.Join(comments, " | "),
		})
		emitted++
	}

	if emitted == 0 {
		return &EmptyResultError{}
	}
	return nil
}

// collectIQElements gathers every minos:client iq element, depth-first.
func collectIQElements(n *minosNode, out *[]*minosNode) {
	for i := range n.Nodes {
		child := &n.Nodes[i]
		if child.XMLName.Space == minosNamespaceClient && child.XMLName.Local == "iq" {
			*out = append(*out, child)
			continue
		}
		collectIQElements(child, out)
	}
}

// minosQSOValues descends iq -> query -> methodCall, requires the method to
// be MinosLogQSO, and flattens the parameter struct members into a
// name -> first-child-text map.
func minosQSOValues(iq *minosNode) (map[string]string, bool) {
	query := iq.child(minosNamespaceRPC, "query")
	if query == nil {
		return nil, false
	}
	methodCall := query.child(minosNamespaceRPC, "methodCall")
	if methodCall == nil {
		return nil, false
	}
	methodName := methodCall.child(minosNamespaceRPC, "methodName")
	if methodName == nil || strings.TrimSpace(methodName.Text) != minosQSOMethod {
		return nil, false
	}

	params := methodCall.child(minosNamespaceRPC, "params")
	if params == nil {
		return nil, false
	}
	param := params.child(minosNamespaceRPC, "param")
	if param == nil {
		return nil, false
	}
	value := param.child(minosNamespaceRPC, "value")
	if value == nil {
		return nil, false
	}
	paramStruct := value.child(minosNamespaceRPC, "struct")
	if paramStruct == nil {
		return nil, false
	}

	values := make(map[string]string)
	for i := range paramStruct.Nodes {
		member := &paramStruct.Nodes[i]
		if member.XMLName.Local != "member" {
			continue
		}
		name := member.child(minosNamespaceRPC, "name")
		memberValue := member.child(minosNamespaceRPC, "value")
		if name == nil || memberValue == nil || len(memberValue.Nodes) == 0 {
			continue
		}
		// First child element holds the typed value text.
		values[strings.TrimSpace(name.Text)] = memberValue.Nodes[0].Text
	}
	return values, true
}
