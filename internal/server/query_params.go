package server

import (
	"github.com/gin-gonic/gin"
	"github.com/seafarelabs/portside/internal/filterengine"
)

func bookingCriteriaFromQuery(c *gin.Context) filterengine.BookingCriteria {
	return filterengine.BookingCriteria{
		Passenger: c.Query("passenger"),
		BookingID: c.Query("booking_id"),
		Facility:  c.Query("facility"),
		Status:    c.Query("status"),
	}
}

func mealCriteriaFromQuery(c *gin.Context) filterengine.MealCriteria {
	return filterengine.MealCriteria{
		Passenger: c.Query("passenger"),
		BookingID: c.Query("booking_id"),
		MealType:  c.Query("meal_type"),
		MealTime:  c.Query("meal_time"),
	}
}
