package dangerous

import "fmt"

// Config is a typed settings map reporting which build-tag-gated
// features this build has compiled in, plus two tunable values
// (context.inline_capacity, search.crossover) that are reported only:
// nothing in the package reads them back. It does not itself change
// behavior - the
// underlying switches are real Go build tags - it only makes the
// compiled-in feature set inspectable at runtime, the same way a
// grammar/compiler configuration reports its flags.
type Config map[string]*cfgVal

// NewConfig returns a Config primed with this build's feature flags
// and default tunables.
func NewConfig() *Config {
	m := make(Config)
	m.SetBool("build.alloc", allocEnabled)
	m.SetBool("build.retry", retryEnabled)
	m.SetBool("build.unicode", unicodeEnabled)
	m.SetBool("build.simd", simdSearch)
	m.SetInt("context.inline_capacity", contextInlineCapacity())
	m.SetInt("search.crossover", 32)
	return &m
}

type cfgValType int

const (
	cfgValTypeUndefined cfgValType = iota
	cfgValTypeBool
	cfgValTypeInt
	cfgValTypeString
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValTypeUndefined: "undefined",
		cfgValTypeBool:      "bool",
		cfgValTypeInt:       "int",
		cfgValTypeString:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValTypeUndefined {
		panic(fmt.Sprintf("can't assign `%s` to type `%s`", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("can't retrieve `%s` from `%s` setting", vt, v.typ))
	}
}

// SetBool sets the bool-typed setting at path.
func (c Config) SetBool(path string, v bool) {
	c[path] = &cfgVal{}
	c[path].assignType(cfgValTypeBool)
	c[path].asBool = v
}

// SetInt sets the int-typed setting at path.
func (c Config) SetInt(path string, v int) {
	c[path] = &cfgVal{}
	c[path].assignType(cfgValTypeInt)
	c[path].asInt = v
}

// SetString sets the string-typed setting at path.
func (c Config) SetString(path string, v string) {
	c[path] = &cfgVal{}
	c[path].assignType(cfgValTypeString)
	c[path].asString = v
}

// GetBool retrieves the bool-typed setting at path. It panics if path
// is unset or holds a different type.
func (c Config) GetBool(path string) bool {
	if val, ok := c[path]; ok {
		val.checkType(cfgValTypeBool)
		return val.asBool
	}
	panic(fmt.Sprintf("bool setting `%s` does not exist", path))
}

// GetInt retrieves the int-typed setting at path.
func (c Config) GetInt(path string) int {
	if val, ok := c[path]; ok {
		val.checkType(cfgValTypeInt)
		return val.asInt
	}
	panic(fmt.Sprintf("int setting `%s` does not exist", path))
}

// GetString retrieves the string-typed setting at path.
func (c Config) GetString(path string) string {
	if val, ok := c[path]; ok {
		val.checkType(cfgValTypeString)
		return val.asString
	}
	panic(fmt.Sprintf("string setting `%s` does not exist", path))
}
