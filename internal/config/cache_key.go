package config

// CacheKeyStruct builds the Redis keys used by the catalog cache.
type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CourseListKey returns the cache key for the full course list response.
func (r *CacheKeyStruct) CourseListKey() string {
	return "catalog:courses"
}

// FacultyListKey returns the cache key for the full faculty list response.
func (r *CacheKeyStruct) FacultyListKey() string {
	return "catalog:faculties"
}
