// Package timeline turns a generation count into synchronized visibility
// windows and encodes them for playback.
//
// Window i covers [i*frame, (i+1)*frame); the windows partition the whole
// timeline, so exactly one generation is visible at any instant. Two
// encodings are available through [NewEncoder]:
//
//   - "discrete": each layer carries its absolute begin time and duration and
//     switches opacity without interpolation
//   - "cyclic": every layer shares one looping opacity [Curve] and is shifted
//     by a per-layer start offset
//
// Both report the same visible generation at every frame boundary.
package timeline
