package service

import "truth_buddy_backend/internal/model"

// sampleQuestions is the starter pack inserted on first run when the active
// store has no questions. The first three are the hot set for the given day.
func sampleQuestions(today string) []*model.Question {
	return []*model.Question{
		{
			Title:         "What is the capital of France?",
			Category:      model.CategoryGeneral,
			Difficulty:    model.DifficultyEasy,
			Options:       model.StringList{"London", "Berlin", "Paris", "Madrid"},
			CorrectAnswer: 2,
			Explanation:   "Paris is the capital and most populous city of France.",
			IsHot:         true,
			HotDate:       today,
		},
		{
			Title:         "Which planet is known as the Red Planet?",
			Category:      model.CategoryScience,
			Difficulty:    model.DifficultyEasy,
			Options:       model.StringList{"Venus", "Mars", "Jupiter", "Saturn"},
			CorrectAnswer: 1,
			Explanation:   "Mars is called the Red Planet due to iron oxide (rust) on its surface.",
			IsHot:         true,
			HotDate:       today,
		},
		{
			Title:         "What does HTML stand for?",
			Category:      model.CategoryTechnology,
			Difficulty:    model.DifficultyMedium,
			Options:       model.StringList{"Home Tool Markup Language", "Hyperlinks and Text Markup Language", "Hyper Text Markup Language", "Hyperlink Text Markup Language"},
			CorrectAnswer: 2,
			Explanation:   "HTML stands for Hyper Text Markup Language, used to create web pages.",
			IsHot:         true,
			HotDate:       today,
		},
		{
			Title:         "Who painted the Mona Lisa?",
			Category:      model.CategoryGeneral,
			Difficulty:    model.DifficultyEasy,
			Options:       model.StringList{"Vincent van Gogh", "Pablo Picasso", "Leonardo da Vinci", "Michelangelo"},
			CorrectAnswer: 2,
			Explanation:   "Leonardo da Vinci painted the Mona Lisa between 1503-1506.",
		},
		{
			Title:         "What is the largest mammal in the world?",
			Category:      model.CategoryScience,
			Difficulty:    model.DifficultyEasy,
			Options:       model.StringList{"African Elephant", "Blue Whale", "Giraffe", "Polar Bear"},
			CorrectAnswer: 1,
			Explanation:   "The Blue Whale is the largest mammal and largest animal ever known to have lived on Earth.",
		},
		{
			Title:         "Which sport is known as 'The Beautiful Game'?",
			Category:      model.CategorySports,
			Difficulty:    model.DifficultyEasy,
			Options:       model.StringList{"Basketball", "Tennis", "Football/Soccer", "Cricket"},
			CorrectAnswer: 2,
			Explanation:   "Football (soccer) is widely known as 'The Beautiful Game' due to its artistry and global appeal.",
		},
		{
			Title:         "What is the chemical symbol for gold?",
			Category:      model.CategoryScience,
			Difficulty:    model.DifficultyMedium,
			Options:       model.StringList{"Go", "Gd", "Au", "Ag"},
			CorrectAnswer: 2,
			Explanation:   "Au is the chemical symbol for gold, derived from the Latin word 'aurum'.",
		},
		{
			Title:         "Which programming language was created by Guido van Rossum?",
			Category:      model.CategoryTechnology,
			Difficulty:    model.DifficultyMedium,
			Options:       model.StringList{"Java", "Python", "JavaScript", "C++"},
			CorrectAnswer: 1,
			Explanation:   "Python was created by Guido van Rossum and first released in 1991.",
		},
		{
			Title:         "In which year did World War II end?",
			Category:      model.CategoryHistory,
			Difficulty:    model.DifficultyEasy,
			Options:       model.StringList{"1944", "1945", "1946", "1947"},
			CorrectAnswer: 1,
			Explanation:   "World War II ended in 1945 with the surrender of Japan in September.",
		},
		{
			Title:         "What is the fastest land animal?",
			Category:      model.CategoryGeneral,
			Difficulty:    model.DifficultyEasy,
			Options:       model.StringList{"Lion", "Cheetah", "Leopard", "Tiger"},
			CorrectAnswer: 1,
			Explanation:   "The cheetah is the fastest land animal, capable of reaching speeds up to 70 mph.",
		},
		{
			Title:         "Which is the smallest planet in the Solar System?",
			Category:      model.CategoryScience,
			Difficulty:    model.DifficultyEasy,
			Options:       model.StringList{"Mercury", "Mars", "Venus", "Pluto"},
			CorrectAnswer: 0,
			Explanation:   "Mercury is the smallest planet in our Solar System.",
		},
		{
			Title:         "Who invented the telephone?",
			Category:      model.CategoryTechnology,
			Difficulty:    model.DifficultyEasy,
			Options:       model.StringList{"Thomas Edison", "Alexander Graham Bell", "Nikola Tesla", "Michael Faraday"},
			CorrectAnswer: 1,
			Explanation:   "Alexander Graham Bell is credited with inventing the telephone in 1876.",
		},
		{
			Title:         "Which continent is the Sahara Desert located in?",
			Category:      model.CategoryGeography,
			Difficulty:    model.DifficultyEasy,
			Options:       model.StringList{"Asia", "Africa", "Australia", "South America"},
			CorrectAnswer: 1,
			Explanation:   "The Sahara Desert is located in northern Africa.",
		},
		{
			Title:         "Who was the first person to reach the South Pole?",
			Category:      model.CategoryHistory,
			Difficulty:    model.DifficultyMedium,
			Options:       model.StringList{"Robert Scott", "Roald Amundsen", "Ernest Shackleton", "Edmund Hillary"},
			CorrectAnswer: 1,
			Explanation:   "Roald Amundsen, a Norwegian explorer, reached the South Pole in 1911.",
		},
		{
			Title:         "Which gas is most abundant in Earth's atmosphere?",
			Category:      model.CategoryScience,
			Difficulty:    model.DifficultyMedium,
			Options:       model.StringList{"Oxygen", "Carbon Dioxide", "Nitrogen", "Hydrogen"},
			CorrectAnswer: 2,
			Explanation:   "Nitrogen makes up about 78% of Earth's atmosphere.",
		},
		{
			Title:         "In which sport is the term 'love' used?",
			Category:      model.CategorySports,
			Difficulty:    model.DifficultyEasy,
			Options:       model.StringList{"Tennis", "Cricket", "Football", "Hockey"},
			CorrectAnswer: 0,
			Explanation:   "In tennis, 'love' refers to a score of zero.",
		},
		{
			Title:         "Which ocean is the largest in the world?",
			Category:      model.CategoryGeneral,
			Difficulty:    model.DifficultyEasy,
			Options:       model.StringList{"Atlantic Ocean", "Pacific Ocean", "Indian Ocean", "Arctic Ocean"},
			CorrectAnswer: 1,
			Explanation:   "The Pacific Ocean is the largest, covering more than 30% of Earth's surface.",
		},
		{
			Title:         "Who discovered penicillin?",
			Category:      model.CategoryScience,
			Difficulty:    model.DifficultyMedium,
			Options:       model.StringList{"Marie Curie", "Louis Pasteur", "Alexander Fleming", "Gregor Mendel"},
			CorrectAnswer: 2,
			Explanation:   "Alexander Fleming discovered penicillin in 1928, revolutionizing medicine.",
		},
		{
			Title:         "Which company developed the Windows operating system?",
			Category:      model.CategoryTechnology,
			Difficulty:    model.DifficultyEasy,
			Options:       model.StringList{"Apple", "Microsoft", "IBM", "Google"},
			CorrectAnswer: 1,
			Explanation:   "Microsoft developed and released the Windows operating system in 1985.",
		},
		{
			Title:         "What is the SI unit of force?",
			Category:      model.CategoryScience,
			Difficulty:    model.DifficultyMedium,
			Options:       model.StringList{"Pascal", "Joule", "Newton", "Watt"},
			CorrectAnswer: 2,
			Explanation:   "The SI unit of force is the Newton (N), named after Sir Isaac Newton.",
		},
	}
}
