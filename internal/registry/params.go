package registry

// Params carries resolved keyword arguments into an assessment method. Values
// are already typed by the parameter resolver: float64, bool, string,
// []float64, [][]float64, [][2]float64 or one of the function types of this
// package.
type Params map[string]any

// Float returns the number stored under key.
func (p Params) Float(key string) (float64, bool) {
	v, ok := p[key].(float64)
	return v, ok
}

// FloatOr returns the number stored under key, or def.
func (p Params) FloatOr(key string, def float64) float64 {
	if v, ok := p.Float(key); ok {
		return v
	}
	return def
}

// Bool returns the flag stored under key.
func (p Params) Bool(key string) (bool, bool) {
	v, ok := p[key].(bool)
	return v, ok
}

// Floats returns the vector stored under key.
func (p Params) Floats(key string) ([]float64, bool) {
	v, ok := p[key].([]float64)
	return v, ok
}

// Pairs returns the bound pairs stored under key.
func (p Params) Pairs(key string) ([][2]float64, bool) {
	v, ok := p[key].([][2]float64)
	return v, ok
}

// Normalization returns the normalization selected under key.
func (p Params) Normalization(key string) (NormalizationFunc, bool) {
	v, ok := p[key].(NormalizationFunc)
	return v, ok
}

// Distance returns the distance selected under key.
func (p Params) Distance(key string) (DistanceFunc, bool) {
	v, ok := p[key].(DistanceFunc)
	return v, ok
}

// Defuzzify returns the defuzzification selected under key.
func (p Params) Defuzzify(key string) (DefuzzifyFunc, bool) {
	v, ok := p[key].(DefuzzifyFunc)
	return v, ok
}

func (p Params) Preference(key string) (PreferenceFunc, bool) {
	v, ok := p[key].(PreferenceFunc)
	return v, ok
}

func (p Params) Expert(key string) (ExpertFunc, bool) {
	v, ok := p[key].(ExpertFunc)
	return v, ok
}

// Matrix returns the number matrix stored under key.
func (p Params) Matrix(key string) ([][]float64, bool) {
	v, ok := p[key].([][]float64)
	return v, ok
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}
