package content

import "github.com/edututor/backend/internal/models"

// DefaultBank returns the built-in question bank: four subjects, three
// difficulty tiers each. Callers get a fresh map on every call; the
// assessment bank deep-copies it again at construction.
func DefaultBank() map[string]map[models.Difficulty][]models.Question {
	return map[string]map[models.Difficulty][]models.Question{
		"mathematics": {
			models.DifficultyEasy: {
				{
					Text:        "What is 15% of 200?",
					Options:     []string{"20", "25", "30", "35"},
					Correct:     2,
					Explanation: "15% of 200 = 0.15 × 200 = 30",
					Topic:       "Percentages",
				},
				{
					Text:        "What is the area of a rectangle with length 8 and width 5?",
					Options:     []string{"40", "13", "26", "35"},
					Correct:     0,
					Explanation: "Area = length × width = 8 × 5 = 40",
					Topic:       "Basic Geometry",
				},
				{
					Text:        "Solve: 3x + 7 = 16",
					Options:     []string{"x = 2", "x = 3", "x = 4", "x = 5"},
					Correct:     1,
					Explanation: "3x = 16 - 7 = 9, so x = 3",
					Topic:       "Basic Algebra",
				},
				{
					Text:        "What is 45 ÷ 9?",
					Options:     []string{"4", "5", "6", "7"},
					Correct:     1,
					Explanation: "45 ÷ 9 = 5",
					Topic:       "Basic Division",
				},
			},
			models.DifficultyMedium: {
				{
					Text:        "What is the derivative of x² + 3x?",
					Options:     []string{"2x + 3", "x² + 3", "2x", "3x"},
					Correct:     0,
					Explanation: "Using power rule: d/dx(x²) = 2x and d/dx(3x) = 3",
					Topic:       "Calculus",
				},
				{
					Text:        "Find the limit of (x² - 4)/(x - 2) as x approaches 2",
					Options:     []string{"2", "4", "0", "Undefined"},
					Correct:     1,
					Explanation: "Factor: (x+2)(x-2)/(x-2) = x+2, limit = 4",
					Topic:       "Limits",
				},
				{
					Text:        "What is the slope of the line y = 3x + 2?",
					Options:     []string{"2", "3", "5", "1"},
					Correct:     1,
					Explanation: "In y = mx + b form, m is the slope, so slope = 3",
					Topic:       "Linear Equations",
				},
			},
			models.DifficultyHard: {
				{
					Text:        "Solve the differential equation dy/dx = 2y",
					Options:     []string{"y = Ce^(2x)", "y = C + 2x", "y = 2Ce^x", "y = Ce^x"},
					Correct:     0,
					Explanation: "Separable equation: dy/y = 2dx, ln|y| = 2x + C",
					Topic:       "Differential Equations",
				},
				{
					Text:        "Find the integral of sin(x)cos(x)dx",
					Options:     []string{"sin²(x)/2 + C", "-cos²(x)/2 + C", "sin(x)cos(x) + C", "Both A and B"},
					Correct:     3,
					Explanation: "Using substitution or identity, both forms are correct",
					Topic:       "Integration",
				},
			},
		},
		"computer_science": {
			models.DifficultyEasy: {
				{
					Text:        "What does CPU stand for?",
					Options:     []string{"Central Processing Unit", "Computer Processing Unit", "Central Program Unit", "Computer Program Unit"},
					Correct:     0,
					Explanation: "CPU stands for Central Processing Unit",
					Topic:       "Computer Basics",
				},
				{
					Text:        "Which of these is a programming language?",
					Options:     []string{"HTML", "Python", "CSS", "HTTP"},
					Correct:     1,
					Explanation: "Python is a general-purpose programming language",
					Topic:       "Programming Languages",
				},
				{
					Text:        "What is binary code made of?",
					Options:     []string{"0s and 1s", "Letters", "Numbers 1-9", "Symbols"},
					Correct:     0,
					Explanation: "Binary code uses only 0s and 1s",
					Topic:       "Computer Basics",
				},
			},
			models.DifficultyMedium: {
				{
					Text:        "What is the time complexity of binary search?",
					Options:     []string{"O(n)", "O(log n)", "O(n²)", "O(1)"},
					Correct:     1,
					Explanation: "Binary search halves the search space each iteration",
					Topic:       "Algorithms",
				},
				{
					Text:        "Which data structure uses LIFO principle?",
					Options:     []string{"Queue", "Stack", "Array", "Linked List"},
					Correct:     1,
					Explanation: "Stack follows Last In, First Out (LIFO) principle",
					Topic:       "Data Structures",
				},
				{
					Text:        "What does SQL stand for?",
					Options:     []string{"Structured Query Language", "Simple Query Language", "Standard Query Language", "System Query Language"},
					Correct:     0,
					Explanation: "SQL stands for Structured Query Language",
					Topic:       "Databases",
				},
			},
			models.DifficultyHard: {
				{
					Text:        "What is the worst-case time complexity of QuickSort?",
					Options:     []string{"O(n log n)", "O(n²)", "O(n)", "O(log n)"},
					Correct:     1,
					Explanation: "QuickSort worst case is O(n²) when pivot is always smallest/largest",
					Topic:       "Advanced Algorithms",
				},
				{
					Text:        "Which design pattern ensures a class has only one instance?",
					Options:     []string{"Factory", "Observer", "Singleton", "Strategy"},
					Correct:     2,
					Explanation: "Singleton pattern ensures only one instance of a class exists",
					Topic:       "Design Patterns",
				},
			},
		},
		"physics": {
			models.DifficultyEasy: {
				{
					Text:        "What is the unit of force in SI system?",
					Options:     []string{"Joule", "Watt", "Newton", "Pascal"},
					Correct:     2,
					Explanation: "The SI unit of force is Newton (N)",
					Topic:       "Units and Measurements",
				},
				{
					Text:        "What is the speed of light in vacuum?",
					Options:     []string{"3 × 10⁸ m/s", "3 × 10⁶ m/s", "3 × 10¹⁰ m/s", "3 × 10⁹ m/s"},
					Correct:     0,
					Explanation: "Speed of light in vacuum is approximately 3 × 10⁸ m/s",
					Topic:       "Constants",
				},
			},
			models.DifficultyMedium: {
				{
					Text:        "What is the acceleration due to gravity on Earth?",
					Options:     []string{"9.8 m/s²", "10 m/s²", "9.81 m/s²", "9.0 m/s²"},
					Correct:     2,
					Explanation: "Standard acceleration due to gravity is approximately 9.81 m/s²",
					Topic:       "Mechanics",
				},
				{
					Text:        "What is Newton's second law of motion?",
					Options:     []string{"F = ma", "E = mc²", "P = mv", "W = Fd"},
					Correct:     0,
					Explanation: "Newton's second law states that Force equals mass times acceleration",
					Topic:       "Classical Mechanics",
				},
			},
			models.DifficultyHard: {
				{
					Text:        "What is Schrödinger's equation used for?",
					Options:     []string{"Classical mechanics", "Quantum mechanics", "Thermodynamics", "Electromagnetism"},
					Correct:     1,
					Explanation: "Schrödinger's equation describes quantum mechanical systems",
					Topic:       "Quantum Physics",
				},
				{
					Text:        "What is the uncertainty principle?",
					Options:     []string{"ΔxΔp ≥ ħ/2", "E = hf", "λ = h/p", "F = qE"},
					Correct:     0,
					Explanation: "Heisenberg uncertainty principle: ΔxΔp ≥ ħ/2",
					Topic:       "Quantum Physics",
				},
			},
		},
		"literature": {
			models.DifficultyEasy: {
				{
					Text:        "Who wrote 'Romeo and Juliet'?",
					Options:     []string{"Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain"},
					Correct:     1,
					Explanation: "Romeo and Juliet was written by William Shakespeare",
					Topic:       "Classic Literature",
				},
				{
					Text:        "What is a haiku?",
					Options:     []string{"A type of novel", "A Japanese poem", "A play", "An essay"},
					Correct:     1,
					Explanation: "A haiku is a traditional Japanese poem with 17 syllables",
					Topic:       "Poetry",
				},
			},
			models.DifficultyMedium: {
				{
					Text:        "What literary device is 'The wind whispered through the trees'?",
					Options:     []string{"Metaphor", "Simile", "Personification", "Alliteration"},
					Correct:     2,
					Explanation: "Personification gives human characteristics to non-human things",
					Topic:       "Literary Devices",
				},
				{
					Text:        "Who wrote '1984'?",
					Options:     []string{"George Orwell", "Aldous Huxley", "Ray Bradbury", "H.G. Wells"},
					Correct:     0,
					Explanation: "1984 was written by George Orwell",
					Topic:       "Modern Literature",
				},
			},
			models.DifficultyHard: {
				{
					Text:        "In which novel does the character Jay Gatsby appear?",
					Options:     []string{"To Kill a Mockingbird", "The Great Gatsby", "1984", "Pride and Prejudice"},
					Correct:     1,
					Explanation: "Jay Gatsby is the protagonist of F. Scott Fitzgerald's 'The Great Gatsby'",
					Topic:       "American Literature",
				},
				{
					Text:        "What is stream of consciousness in literature?",
					Options:     []string{"A poetic form", "A narrative technique", "A literary movement", "A type of meter"},
					Correct:     1,
					Explanation: "Stream of consciousness is a narrative technique that presents thoughts as they occur",
					Topic:       "Literary Techniques",
				},
			},
		},
	}
}
