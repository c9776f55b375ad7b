// Package catalog loads the company profile shown by the showroom screen.
//
// A catalog is a YAML document with the company header, the sidebar
// categories and the products in each category:
//
//	company:
//	  name: KMG Robust
//	  revenue: 24 M Revenue
//	  overview: |
//	    ## About
//	default_category: Dry Spices
//	categories:
//	  - id: "1"
//	    name: Dry Spices
//	    products:
//	      - id: "1"
//	        name: Black Pepper
//	        images: [a.jpg, b.jpg]
//	        origin: Tanzania
//	        grade: Choice, Export Quality
//	        packaging_type: Carton Box (50kg)
//
// Unknown keys are rejected. Validation failures wrap ErrInvalidCatalog.
// Categories are ordered by natural id order, so "10" sorts after "9".
// A product's image list becomes its carousel's slide set; an empty list is
// valid and renders the placeholder.
//
// The built-in catalog (Default) is embedded in the binary and used when no
// catalog path is configured.
package catalog
