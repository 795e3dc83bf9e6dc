package adzuna

// VersionRequest reads the API version.
type VersionRequest struct {
	request[Version]
}

// CategoriesRequest lists the job categories of a country.
type CategoriesRequest struct {
	request[Categories]
}

// Country selects the national job market of interest.
func (r *CategoriesRequest) Country(country Country) *CategoriesRequest {
	r.country = country.Code()
	return r
}

// HistogramRequest reads the salary distribution of live
// advertisements.
type HistogramRequest struct {
	request[SalaryHistogram]
}

// What filters by keywords. Multiple terms may be space separated.
func (r *HistogramRequest) What(what string) *HistogramRequest {
	r.params.set("what", what)
	return r
}

// Country selects the national job market of interest.
func (r *HistogramRequest) Country(country Country) *HistogramRequest {
	r.country = country.Code()
	return r
}

// Location narrows the query to a location, in the form returned in a
// LocationDetail area. Repeated calls refine the location further, up
// to eight levels.
func (r *HistogramRequest) Location(location string) *HistogramRequest {
	r.params.addLocation(location)
	return r
}

// Category filters with a category tag, as returned by the categories
// endpoint.
func (r *HistogramRequest) Category(category string) *HistogramRequest {
	r.params.set("category", category)
	return r
}

// HistoryRequest reads average salaries back in time.
type HistoryRequest struct {
	request[HistoricalSalary]
}

// Months sets the number of months back for which to retrieve data.
func (r *HistoryRequest) Months(months uint) *HistoryRequest {
	r.params.setUint("months", months)
	return r
}

// Country selects the national job market of interest.
func (r *HistoryRequest) Country(country Country) *HistoryRequest {
	r.country = country.Code()
	return r
}

// Location narrows the query to a location, in the form returned in a
// LocationDetail area. Repeated calls refine the location further, up
// to eight levels.
func (r *HistoryRequest) Location(location string) *HistoryRequest {
	r.params.addLocation(location)
	return r
}

// Category filters with a category tag, as returned by the categories
// endpoint.
func (r *HistoryRequest) Category(category string) *HistoryRequest {
	r.params.set("category", category)
	return r
}

// TopCompaniesRequest reads the advertisers with the most live
// advertisements.
type TopCompaniesRequest struct {
	request[TopCompanies]
}

// What filters by keywords. Multiple terms may be space separated.
func (r *TopCompaniesRequest) What(what string) *TopCompaniesRequest {
	r.params.set("what", what)
	return r
}

// Country selects the national job market of interest.
func (r *TopCompaniesRequest) Country(country Country) *TopCompaniesRequest {
	r.country = country.Code()
	return r
}

// Location narrows the query to a location, in the form returned in a
// LocationDetail area. Repeated calls refine the location further, up
// to eight levels.
func (r *TopCompaniesRequest) Location(location string) *TopCompaniesRequest {
	r.params.addLocation(location)
	return r
}

// Category filters with a category tag, as returned by the categories
// endpoint.
func (r *TopCompaniesRequest) Category(category string) *TopCompaniesRequest {
	r.params.set("category", category)
	return r
}

// GeodataRequest reads job counts by location.
type GeodataRequest struct {
	request[JobGeoData]
}

// Country selects the national job market of interest.
func (r *GeodataRequest) Country(country Country) *GeodataRequest {
	r.country = country.Code()
	return r
}

// Location narrows the query to a location, in the form returned in a
// LocationDetail area. Repeated calls refine the location further, up
// to eight levels.
func (r *GeodataRequest) Location(location string) *GeodataRequest {
	r.params.addLocation(location)
	return r
}

// Category filters with a category tag, as returned by the categories
// endpoint.
func (r *GeodataRequest) Category(category string) *GeodataRequest {
	r.params.set("category", category)
	return r
}
