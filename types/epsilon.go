package types

// floatCmpEpsilon guards against division by (near) zero when normalizing
// vectors.
const floatCmpEpsilon float32 = 1e-6
