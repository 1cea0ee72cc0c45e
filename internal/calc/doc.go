// Package calc holds the closed-form reference formulas used to produce
// the ground-truth answers for every practice module: fat and fat-free
// mass, skeletal-muscle bands, target composition, composition change,
// Mifflin-St Jeor energy expenditure, macronutrient grams and goal
// timelines.
//
// All functions are pure. Values are returned unrounded; callers round
// for presentation with Round1 or Round2.
package calc
