package ecs

// TicksPerSecond is the fixed simulation rate. Speeds are px/s; the
// movement system divides by this when integrating.
const TicksPerSecond = 60
