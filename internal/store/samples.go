package store

import "github.com/socialchef/moodchef/internal/recipe"

func img(url string) *string { return &url }

// SampleRecipes is the fixed seed set: three recipes for each recognised mood.
func SampleRecipes() []recipe.Draft {
	return []recipe.Draft{
		{
			Name:            "Rainbow Poke Bowl",
			Ingredients:     "- 1 cup sushi rice\n- 150g fresh tuna, cubed\n- 1 mango, diced\n- 1 avocado, sliced\n- 2 tbsp soy sauce",
			Instructions:    "1. Cook the rice and let it cool\n2. Toss the tuna in soy sauce\n3. Arrange rice, tuna, mango and avocado in a bowl",
			CookingTime:     "25 minutes",
			DifficultyLevel: recipe.DifficultyEasy,
			CuisineType:     "Hawaiian",
			Category:        "main",
			Mood:            "happy",
			ImageURL:        img("https://images.unsplash.com/photo-1546069901-ba9599a7e63c"),
		},
		{
			Name:            "Sunshine Citrus Salad",
			Ingredients:     "- 2 oranges, segmented\n- 1 grapefruit, segmented\n- handful of mint\n- 1 tbsp honey",
			Instructions:    "1. Segment the citrus\n2. Arrange on a plate\n3. Drizzle with honey and scatter mint",
			CookingTime:     "10 minutes",
			DifficultyLevel: recipe.DifficultyEasy,
			CuisineType:     "Mediterranean",
			Category:        "salad",
			Mood:            "happy",
			ImageURL:        img("https://images.unsplash.com/photo-1512621776951-a57141f2eefd"),
		},
		{
			Name:            "Berry Smoothie",
			Ingredients:     "- 1 cup mixed berries\n- 1 banana\n- 1 cup yogurt\n- 1/2 cup milk",
			Instructions:    "1. Add everything to a blender\n2. Blend until smooth\n3. Serve chilled",
			CookingTime:     "5 minutes",
			DifficultyLevel: recipe.DifficultyEasy,
			CuisineType:     "American",
			Category:        "beverage",
			Mood:            "happy",
			ImageURL:        img("https://images.unsplash.com/photo-1553530666-ba11a7da3888"),
		},
		{
			Name:            "Creamy Tomato Soup",
			Ingredients:     "- 800g canned tomatoes\n- 1 onion, chopped\n- 2 cloves garlic\n- 100ml cream",
			Instructions:    "1. Soften onion and garlic\n2. Add tomatoes and simmer 20 minutes\n3. Blend and stir in cream",
			CookingTime:     "35 minutes",
			DifficultyLevel: recipe.DifficultyEasy,
			CuisineType:     "Italian",
			Category:        "soup",
			Mood:            "sad",
			ImageURL:        img("https://images.unsplash.com/photo-1547592166-23ac45744acd"),
		},
		{
			Name:            "Baked Mac and Cheese",
			Ingredients:     "- 300g macaroni\n- 200g cheddar, grated\n- 500ml milk\n- 2 tbsp butter\n- 2 tbsp flour",
			Instructions:    "1. Boil the pasta\n2. Make a cheese sauce with butter, flour and milk\n3. Combine and bake until golden",
			CookingTime:     "45 minutes",
			DifficultyLevel: recipe.DifficultyMedium,
			CuisineType:     "American",
			Category:        "main",
			Mood:            "sad",
			ImageURL:        img("https://images.unsplash.com/photo-1543339494-b4cd4f7ba686"),
		},
		{
			Name:            "Chocolate Chip Cookies",
			Ingredients:     "- 225g butter\n- 200g brown sugar\n- 2 eggs\n- 280g flour\n- 200g chocolate chips",
			Instructions:    "1. Cream butter and sugar\n2. Beat in eggs, then flour\n3. Fold in chocolate and bake 12 minutes",
			CookingTime:     "30 minutes",
			DifficultyLevel: recipe.DifficultyEasy,
			CuisineType:     "American",
			Category:        "dessert",
			Mood:            "sad",
			ImageURL:        img("https://images.unsplash.com/photo-1499636136210-6f4ee915583e"),
		},
		{
			Name:            "Loaded Nachos",
			Ingredients:     "- 200g tortilla chips\n- 150g cheddar\n- 1 jalapeno, sliced\n- 1/2 cup salsa\n- sour cream",
			Instructions:    "1. Spread chips on a tray\n2. Top with cheese and jalapeno\n3. Bake until melted and serve with salsa",
			CookingTime:     "15 minutes",
			DifficultyLevel: recipe.DifficultyEasy,
			CuisineType:     "Mexican",
			Category:        "appetizer",
			Mood:            "excited",
			ImageURL:        img("https://images.unsplash.com/photo-1513456852971-30c0b8199d4d"),
		},
		{
			Name:            "Homemade Margherita Pizza",
			Ingredients:     "- 1 pizza dough\n- 1/2 cup tomato sauce\n- 125g mozzarella\n- fresh basil",
			Instructions:    "1. Stretch the dough\n2. Spread sauce and add mozzarella\n3. Bake at 250C for 10 minutes and top with basil",
			CookingTime:     "30 minutes",
			DifficultyLevel: recipe.DifficultyMedium,
			CuisineType:     "Italian",
			Category:        "main",
			Mood:            "excited",
			ImageURL:        img("https://images.unsplash.com/photo-1513104890138-7c749659a591"),
		},
		{
			Name:            "Street Tacos",
			Ingredients:     "- 8 corn tortillas\n- 400g chicken thigh\n- 1 onion, diced\n- cilantro\n- lime",
			Instructions:    "1. Season and grill the chicken\n2. Warm the tortillas\n3. Fill with chicken, onion and cilantro",
			CookingTime:     "30 minutes",
			DifficultyLevel: recipe.DifficultyMedium,
			CuisineType:     "Mexican",
			Category:        "main",
			Mood:            "excited",
			ImageURL:        img("https://images.unsplash.com/photo-1565299585323-38d6b0865b47"),
		},
		{
			Name:            "Quinoa Power Bowl",
			Ingredients:     "- 1 cup quinoa\n- 1 can chickpeas\n- 1 sweet potato, cubed\n- 2 cups spinach\n- tahini",
			Instructions:    "1. Cook the quinoa\n2. Roast sweet potato and chickpeas\n3. Assemble over spinach and drizzle with tahini",
			CookingTime:     "40 minutes",
			DifficultyLevel: recipe.DifficultyEasy,
			CuisineType:     "Mediterranean",
			Category:        "main",
			Mood:            "energetic",
			ImageURL:        img("https://images.unsplash.com/photo-1512621776951-a57141f2eefd"),
		},
		{
			Name:            "Green Protein Smoothie",
			Ingredients:     "- 1 cup spinach\n- 1 banana\n- 1 scoop protein powder\n- 1 tbsp peanut butter\n- 1 cup almond milk",
			Instructions:    "1. Add everything to a blender\n2. Blend until smooth",
			CookingTime:     "5 minutes",
			DifficultyLevel: recipe.DifficultyEasy,
			CuisineType:     "American",
			Category:        "beverage",
			Mood:            "energetic",
			ImageURL:        img("https://images.unsplash.com/photo-1610970881699-44a5587cabec"),
		},
		{
			Name:            "Grilled Salmon with Greens",
			Ingredients:     "- 2 salmon fillets\n- 200g green beans\n- 1 lemon\n- 1 tbsp olive oil",
			Instructions:    "1. Season the salmon with lemon and oil\n2. Grill 4 minutes per side\n3. Serve with steamed green beans",
			CookingTime:     "20 minutes",
			DifficultyLevel: recipe.DifficultyMedium,
			CuisineType:     "Nordic",
			Category:        "main",
			Mood:            "energetic",
			ImageURL:        img("https://images.unsplash.com/photo-1467003909585-2f8a72700288"),
		},
	}
}
