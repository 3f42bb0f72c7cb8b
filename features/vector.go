package features

import "math"

// FeatureVector is a sparse tf-idf vector: vocabulary index → weight.
// Indices absent from the map carry weight zero.
type FeatureVector map[int]float64

// Norm returns the Euclidean norm of the vector.
func (v FeatureVector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// normalize scales the vector to unit norm in place. The zero vector is
// left untouched.
func (v FeatureVector) normalize() {
	norm := v.Norm()
	if norm == 0 {
		return
	}
	for i, w := range v {
		v[i] = w / norm
	}
}
