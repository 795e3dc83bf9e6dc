package adzuna

// SearchRequest searches live job advertisements. Results are paged;
// the page number is part of the URL path, not the query string.
type SearchRequest struct {
	request[JobSearchResults]
}

// Country selects the national job market to search.
func (r *SearchRequest) Country(country Country) *SearchRequest {
	r.country = country.Code()
	return r
}

// Page selects the page of results. Pages start at 1; zero is ignored
// and keeps the current page.
func (r *SearchRequest) Page(page uint) *SearchRequest {
	if page > 0 {
		r.page = int(page)
	}
	return r
}

// What filters by keywords. Multiple terms may be space separated.
func (r *SearchRequest) What(what string) *SearchRequest {
	r.params.set("what", what)
	return r
}

// WhatAnd filters by keywords. All keywords must be found.
func (r *SearchRequest) WhatAnd(whatAnd string) *SearchRequest {
	r.params.set("what_and", whatAnd)
	return r
}

// WhatPhrase filters by an entire phrase which must appear in the
// description or title.
func (r *SearchRequest) WhatPhrase(whatPhrase string) *SearchRequest {
	r.params.set("what_phrase", whatPhrase)
	return r
}

// WhatOr filters by keywords. Any of the keywords may be found.
func (r *SearchRequest) WhatOr(whatOr string) *SearchRequest {
	r.params.set("what_or", whatOr)
	return r
}

// WhatExclude filters out advertisements containing the keywords.
func (r *SearchRequest) WhatExclude(whatExclude string) *SearchRequest {
	r.params.set("what_exclude", whatExclude)
	return r
}

// Place filters by the geographic centre. Place names, postal codes and
// the like may be used.
func (r *SearchRequest) Place(where string) *SearchRequest {
	r.params.set("where", where)
	return r
}

// TitleOnly filters by keywords found in the title alone.
func (r *SearchRequest) TitleOnly(titleOnly string) *SearchRequest {
	r.params.set("title_only", titleOnly)
	return r
}

// Location narrows the search to a location, in the form returned in a
// LocationDetail area. Repeated calls refine the location further, up
// to eight levels.
func (r *SearchRequest) Location(location string) *SearchRequest {
	r.params.addLocation(location)
	return r
}

// Category filters with a category tag, as returned by the categories
// endpoint.
func (r *SearchRequest) Category(category string) *SearchRequest {
	r.params.set("category", category)
	return r
}

// Distance sets the search radius in kilometres around the place set
// with Place. The API defaults to 5km.
func (r *SearchRequest) Distance(distance uint) *SearchRequest {
	r.params.setUint("distance", distance)
	return r
}

// ResultsPerPage sets the number of results per page. Zero is ignored
// and keeps the current value.
func (r *SearchRequest) ResultsPerPage(resultsPerPage uint) *SearchRequest {
	if resultsPerPage > 0 {
		r.params.setUint("results_per_page", resultsPerPage)
	}
	return r
}

// MaxDaysOld sets an upper bound, in days, on the age of the oldest
// advertisement returned.
func (r *SearchRequest) MaxDaysOld(maxDaysOld uint) *SearchRequest {
	r.params.setUint("max_days_old", maxDaysOld)
	return r
}

// SalaryMin sets the minimum salary of interest.
func (r *SearchRequest) SalaryMin(salaryMin uint) *SearchRequest {
	r.params.setUint("salary_min", salaryMin)
	return r
}

// SalaryMax sets the maximum salary of interest.
func (r *SearchRequest) SalaryMax(salaryMax uint) *SearchRequest {
	r.params.setUint("salary_max", salaryMax)
	return r
}

// SalaryIncludeUnknown also includes advertisements with unknown
// salaries.
func (r *SearchRequest) SalaryIncludeUnknown() *SearchRequest {
	r.params.setFlag("salary_include_unknown")
	return r
}

// FullTime restricts results to full time jobs.
func (r *SearchRequest) FullTime() *SearchRequest {
	r.params.setFlag("full_time")
	return r
}

// PartTime restricts results to part time jobs.
func (r *SearchRequest) PartTime() *SearchRequest {
	r.params.setFlag("part_time")
	return r
}

// Contract restricts results to contract jobs.
func (r *SearchRequest) Contract() *SearchRequest {
	r.params.setFlag("contract")
	return r
}

// Permanent restricts results to permanent jobs.
func (r *SearchRequest) Permanent() *SearchRequest {
	r.params.setFlag("permanent")
	return r
}

// Company filters by the canonical company name, as contained in a
// Company object returned with a job.
func (r *SearchRequest) Company(company string) *SearchRequest {
	r.params.set("company", company)
	return r
}

// SortBy specifies the ordering of search results.
func (r *SearchRequest) SortBy(sortBy SortBy) *SearchRequest {
	r.params.set("sort_by", string(sortBy))
	return r
}

// SortDir specifies the direction in which search results are ordered.
func (r *SearchRequest) SortDir(sortDir SortDirection) *SearchRequest {
	r.params.set("sort_dir", string(sortDir))
	return r
}
