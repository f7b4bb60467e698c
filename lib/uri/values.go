package uri

type Value struct {
	Name  string
	Value string
}

// Values is an ordered list of captured template variables. Order follows
// the template's placeholder order, left to right.
type Values []Value

func (v Values) GetByKey(key string) string {
	for _, p := range v {
		if p.Name == key {
			return p.Value
		}
	}
	return ""
}

func (v Values) GetByIndex(i int) string {
	if i < len(v) {
		return v[i].Value
	}
	return ""
}

func (v *Values) Add(key, val string) {
	*v = append(*v, Value{Name: key, Value: val})
}

func (v *Values) Del(key string) {
	for i, p := range *v {
		if p.Name == key {
			*v = append((*v)[:i], (*v)[i+1:]...)
			return
		}
	}
}

func (v Values) Has(key string) bool {
	for _, p := range v {
		if p.Name == key {
			return true
		}
	}
	return false
}
