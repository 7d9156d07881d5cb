package vector

type Segment2 struct {
	a Vector2
	b Vector2
}

func MakeSegment2(a Vector2, b Vector2) Segment2 {
	return Segment2{a, b}
}

func (s Segment2) Get() (Vector2, Vector2) {
	return s.a, s.b
}

func (s Segment2) GetPointA() Vector2 {
	return s.a
}

func (s Segment2) GetPointB() Vector2 {
	return s.b
}

func (s Segment2) SetPointA(a Vector2) Segment2 {
	s.a = a
	return s
}

func (s Segment2) SetPointB(b Vector2) Segment2 {
	s.b = b
	return s
}

func (s Segment2) MarshalJSON() ([]byte, error) {
	b := []byte{'['}

	ajson, err := s.a.MarshalJSON()
	if err != nil {
		return nil, err
	}

	bjson, err := s.b.MarshalJSON()
	if err != nil {
		return nil, err
	}

	b = append(b, ajson...)
	b = append(b, byte(','))
	b = append(b, bjson...)
	return append(b, byte(']')), nil
}

func (s Segment2) Center() Vector2 {
	return s.a.Add(s.b).MultScalar(0.5)
}

func (s Segment2) Vector() Vector2 {
	return s.b.Sub(s.a)
}

func (s Segment2) Length() float64 {
	return s.Vector().Mag()
}

func (s Segment2) LengthSq() float64 {
	return s.Vector().MagSq()
}

// SetLengthFromA scales the segment to the given length, keeping point A
// fixed.
func (s Segment2) SetLengthFromA(length float64) Segment2 {
	s.b = s.a.Add(s.Vector().SetMag(length))
	return s
}

// SetLengthFromB scales the segment to the given length, keeping point B
// fixed.
func (s Segment2) SetLengthFromB(length float64) Segment2 {
	s.a = s.b.Add(s.a.Sub(s.b).SetMag(length))
	return s
}

// SetLengthFromCenter scales the segment to the given length, keeping its
// center fixed.
func (s Segment2) SetLengthFromCenter(length float64) Segment2 {
	center := s.Center()
	half := s.Vector().SetMag(length / 2.0)
	s.a = center.Sub(half)
	s.b = center.Add(half)
	return s
}

// OrthogonalToACentered returns the segment rotated a quarter turn clockwise
// and centered on point A; if the segment points up, the result has A on the
// left and B on the right.
func (s Segment2) OrthogonalToACentered() Segment2 {
	half := s.Vector().OrthogonalClockwise().MultScalar(0.5)
	return MakeSegment2(s.a.Sub(half), s.a.Add(half))
}

// OrthogonalToBCentered returns the segment rotated a quarter turn clockwise
// and centered on point B.
func (s Segment2) OrthogonalToBCentered() Segment2 {
	half := s.Vector().OrthogonalClockwise().MultScalar(0.5)
	return MakeSegment2(s.b.Sub(half), s.b.Add(half))
}
