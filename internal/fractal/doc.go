// Package fractal computes escape-time fractals and the Sierpinski carpet and
// animates them as art modules.
//
// Engines are pure functions over a single complex coordinate:
//
//   - [Mandelbrot]: z starts at 0, c is the pixel
//   - [MandelbrotFolded]: a variant whose imaginary step uses the square
//     roots of the squared components, kept as its own kind
//   - [Julia]: z starts at the pixel, c is a parameter
//   - [BurningShip]: absolute values are taken before squaring
//
// All of them stop at the iteration cap and use |z|² > 4 as the escape test.
// [View] maps pixels onto the complex plane and [Palette] maps iteration
// counts back to colors.
package fractal
