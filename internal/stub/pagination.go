package stub

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// cardPageSize is the number of month cards per page.
const cardPageSize = 12

// page is the paginated list envelope for card collections.
type page struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// paginate reads the page query parameter and returns the offset for the
// database query plus a function that builds the envelope once the total
// count is known.
func paginate(c *gin.Context) (offset int, envelope func(count int64, results any) page) {
	number, err := strconv.Atoi(c.Query("page"))
	if err != nil || number < 1 {
		number = 1
	}

	offset = (number - 1) * cardPageSize

	return offset, func(count int64, results any) page {
		p := page{Count: count, Results: results}

		if int64(number*cardPageSize) < count {
			p.Next = pageURL(c, number+1)
		}
		if number > 1 {
			p.Previous = pageURL(c, number-1)
		}

		return p
	}
}

func pageURL(c *gin.Context, number int) *string {
	u := *c.Request.URL
	query := u.Query()
	query.Set("page", strconv.Itoa(number))
	u.RawQuery = query.Encode()

	s := u.String()
	return &s
}
