package ast

import (
	"fmt"
	"strconv"

	"github.com/tidwall/btree"
)

func mustRules(rules *Seq) *Seq {
	if rules == nil || rules.Tag != RulesSeq {
		panic("ast: rules sequence expected")
	}
	return rules
}

func mustRule(n Node) *Binary {
	b, ok := n.(*Binary)
	if !ok || b.Op != RuleOp {
		panic(fmt.Sprintf("ast: rule expected, got %s node", n.Kind()))
	}
	return b
}

// RuleName returns name of rule node.
func RuleName(rule *Binary) string {
	return mustRule(rule).X.(*Ident).Name
}

// RuleBody returns expr sequence of rule node.
func RuleBody(rule *Binary) *Seq {
	return mustRule(rule).Y.(*Seq)
}

// RuleList returns rule nodes of rules sequence.
func RuleList(rules *Seq) []*Binary {
	items := mustRules(rules).items
	res := make([]*Binary, len(items))
	for i, item := range items {
		res[i] = mustRule(item)
	}
	return res
}

// FirstRuleName returns name of the first rule or empty string.
func FirstRuleName(rules *Seq) string {
	if mustRules(rules).Len() == 0 {
		return ""
	}
	return RuleName(mustRule(rules.items[0]))
}

// DefinedRuleNames returns names of all rules in definition order. Repeated definitions are listed repeatedly.
func DefinedRuleNames(rules *Seq) []string {
	list := RuleList(rules)
	res := make([]string, len(list))
	for i, rule := range list {
		res[i] = RuleName(rule)
	}
	return res
}

// FindRuleBody returns body of the first rule with specified name or nil.
// name is normalized before search.
func FindRuleBody(rules *Seq, name string) *Seq {
	name = NormalizeName(name)
	for _, rule := range RuleList(rules) {
		if RuleName(rule) == name {
			return RuleBody(rule)
		}
	}
	return nil
}

// NameIndex is a sorted set of rule names with number of definitions of each name.
type NameIndex struct {
	names btree.Map[string, int]
}

// IndexRuleNames builds name index of rules sequence.
func IndexRuleNames(rules *Seq) *NameIndex {
	ni := &NameIndex{}
	for _, name := range DefinedRuleNames(rules) {
		ni.Add(name)
	}
	return ni
}

// Add increments number of definitions of name.
func (ni *NameIndex) Add(name string) {
	cnt, _ := ni.names.Get(name)
	ni.names.Set(name, cnt+1)
}

func (ni *NameIndex) Contains(name string) bool {
	_, found := ni.names.Get(name)
	return found
}

// Count returns number of definitions of name.
func (ni *NameIndex) Count(name string) int {
	cnt, _ := ni.names.Get(name)
	return cnt
}

func (ni *NameIndex) Len() int {
	return ni.names.Len()
}

// Names returns distinct names in ascending order.
func (ni *NameIndex) Names() []string {
	res := make([]string, 0, ni.names.Len())
	ni.names.Scan(func(name string, _ int) bool {
		res = append(res, name)
		return true
	})
	return res
}

// Scan calls f for each name in ascending order until f returns false.
func (ni *NameIndex) Scan(f func(name string, count int) bool) {
	ni.names.Scan(f)
}

// SortedRuleNames returns distinct rule names in ascending order.
func SortedRuleNames(rules *Seq) []string {
	return IndexRuleNames(rules).Names()
}

// JoinRules merges all definitions of each name into a single rule. Rules keep the order of first definitions,
// alternatives keep the order of definitions. Returns deep copy of rules and true if anything was merged.
// Joining already joined rules changes nothing.
func JoinRules(rules *Seq) (*Seq, bool) {
	list := RuleList(rules)
	res := NewSeq(RulesSeq)
	bodies := make(map[string]*Seq, len(list))
	for _, rule := range list {
		name := RuleName(rule)
		body := RuleBody(rule)
		joined := bodies[name]
		if joined == nil {
			joined = NewSeq(ExprSeq)
			bodies[name] = joined
			res.Append(NewRule(NewIdent(name), joined))
		}
		for _, item := range body.items {
			joined.Append(Clone(item))
		}
	}
	return res, res.Len() < len(list)
}

// IncrementName returns next candidate for unique name: decimal suffix is incremented
// and padded with zeroes to at least two digits, "02" is appended if there is no suffix.
func IncrementName(name string) string {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) || i == 0 {
		return name + "02"
	}

	n, e := strconv.Atoi(name[i:])
	if e != nil {
		return name + "02"
	}
	return fmt.Sprintf("%s%02d", name[:i], n+1)
}

// AddRule returns name of existing rule with body equal to expr.
// Otherwise it appends new rule with canonical copy of expr as a body
// and returns its name, which is name made unique with IncrementName.
// rules should contain no repeated definitions (see JoinRules), expr must be an expr sequence.
func AddRule(rules *Seq, name string, expr *Seq) string {
	if expr == nil || expr.Tag != ExprSeq {
		panic("ast: expr sequence expected")
	}

	sorted := SortedClone(expr).(*Seq)
	for _, rule := range RuleList(rules) {
		if EqualSorted(canonical(RuleBody(rule)), sorted) {
			return RuleName(rule)
		}
	}

	name = NormalizeName(name)
	index := IndexRuleNames(rules)
	for index.Contains(name) {
		name = IncrementName(name)
	}

	rules.Append(NewRule(&Ident{name}, sorted))
	return name
}

// ReferencedNames returns distinct identifiers used in rule bodies in order of first appearance.
func ReferencedNames(rules *Seq) []string {
	seen := make(map[string]bool)
	var res []string
	for _, rule := range RuleList(rules) {
		Inspect(RuleBody(rule), func(n Node) bool {
			if id, ok := n.(*Ident); ok && !seen[id.Name] {
				seen[id.Name] = true
				res = append(res, id.Name)
			}
			return true
		})
	}
	return res
}
