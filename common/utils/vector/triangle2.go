package vector

type Triangle2 struct {
	a Vector2
	b Vector2
	c Vector2
}

func MakeTriangle2(a Vector2, b Vector2, c Vector2) Triangle2 {
	return Triangle2{a, b, c}
}

func (t Triangle2) GetA() Vector2 {
	return t.a
}

func (t Triangle2) GetB() Vector2 {
	return t.b
}

func (t Triangle2) GetC() Vector2 {
	return t.c
}

func (t Triangle2) Points() [3]Vector2 {
	return [3]Vector2{t.a, t.b, t.c}
}

func (t Triangle2) Center() Vector2 {
	return t.a.Add(t.b).Add(t.c).DivScalar(3.0)
}

func (t Triangle2) MarshalJSON() ([]byte, error) {
	res := []byte{'['}

	for i, p := range t.Points() {
		pjson, err := p.MarshalJSON()
		if err != nil {
			return nil, err
		}

		if i > 0 {
			res = append(res, byte(','))
		}

		res = append(res, pjson...)
	}

	return append(res, byte(']')), nil
}

func (t Triangle2) String() string {
	return "<Triangle2(" + t.a.String() + ", " + t.b.String() + ", " + t.c.String() + ")>"
}
