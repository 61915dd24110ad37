package handlers

import "net/http"

// Routes registers every endpoint of the API on a fresh ServeMux.
func Routes(h *DBHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// Users
	mux.HandleFunc("POST /users", h.CreateUser)
	mux.HandleFunc("POST /users/referred/{id}", h.CreateReferredUser)
	mux.HandleFunc("GET /users", h.GetUsers)
	mux.HandleFunc("GET /users/{id}", h.GetUserByID)
	mux.HandleFunc("PUT /users/{id}", h.UpdateUserByID)
	mux.HandleFunc("DELETE /users/{id}", h.DeleteUserByID)

	// Mentees
	mux.HandleFunc("POST /mentees", h.CreateMentee)
	mux.HandleFunc("GET /mentees", h.GetMentees)
	mux.HandleFunc("GET /mentees/{id}", h.GetMenteeByID)
	mux.HandleFunc("PUT /mentees/{id}", h.UpdateMenteeByID)
	mux.HandleFunc("DELETE /mentees/{id}", h.DeleteMenteeByID)

	// Categories
	mux.HandleFunc("POST /categories", h.CreateCategory)
	mux.HandleFunc("GET /categories", h.GetCategories)
	mux.HandleFunc("GET /categories/{id}", h.GetCategoryByID)
	mux.HandleFunc("PUT /categories/{id}", h.UpdateCategoryByID)
	mux.HandleFunc("DELETE /categories/{id}", h.DeleteCategoryByID)
	mux.HandleFunc("POST /categories/{oldId}/replace/{newId}", h.ReplaceCategory)
	mux.HandleFunc("POST /categories/{oldId}/replace", h.ReplaceCategoryWithNew)

	// Materials
	mux.HandleFunc("POST /materials", h.CreateMaterial)
	mux.HandleFunc("GET /materials", h.GetMaterials)
	mux.HandleFunc("GET /materials/{id}", h.GetMaterialByID)
	mux.HandleFunc("GET /materials/category/{id}", h.GetMaterialsByCategory)
	mux.HandleFunc("GET /materials/recommendations/{id}", h.GetMaterialRecommendations)
	mux.HandleFunc("PUT /materials/{id}", h.UpdateMaterialByID)
	mux.HandleFunc("DELETE /materials/{id}", h.DeleteMaterialByID)

	// Reports
	mux.HandleFunc("GET /reports/mentees-with-materials", h.GetMenteesWithMaterials)
	mux.HandleFunc("GET /reports/category-material-counts", h.GetCategoryMaterialCounts)
	mux.HandleFunc("GET /reports/user-referrals", h.GetUserReferrals)
	mux.HandleFunc("GET /reports/category-successions", h.GetCategorySuccessions)

	mux.HandleFunc("/", RouteNotFound)

	return mux
}
