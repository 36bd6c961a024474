package whiskybaseweb

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"mortlach.dev/Rickhouse/pkg/model"
)

type BottleScraped struct {
	IDLink   string `attr:"href"            selector:"a.label"`
	Name     string `selector:".name > a"`
	Brand    string `selector:".brand > a"`
	Category string `selector:".category"`
	ABV      string `selector:".abv"`
}

type BottleContent struct {
	Notes  string `selector:".whisky-description"`
	Volume string `selector:".volume"`
	Age    string `selector:".age"`
}

type scrapeResults struct {
	bottles []model.Bottle
	err     error
}

func (w *WhiskybaseWebIntegration) FindBottle(name string) ([]model.Bottle, error) {
	collector := colly.NewCollector(
		colly.AllowedDomains(w.allowedDomain()),
		colly.UserAgent("Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"),
	)

	var (
		errs         error
		results      []model.Bottle
		scrapedPages []BottleScraped
	)

	collector.OnHTML(".whisky-item", func(element *colly.HTMLElement) {
		scraped := BottleScraped{}

		err := element.Unmarshal(&scraped)
		if multierr.AppendInto(&errs, err) {
			w.logger.Error("failed to unmarshal scraped bottle", zap.Error(err))

			return
		}

		idString := scraped.IDLink[strings.LastIndex(scraped.IDLink, "/")+1:]

		w.logger.Info("successfully scraped item from results", zap.String("id", idString), zap.String("name", scraped.Name))

		scrapedPages = append(scrapedPages, scraped)
	})

	collector.OnError(func(response *colly.Response, err error) {
		w.logger.Error("error while scraping bottle search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	w.logger.Info("scraping query results", zap.String("query", name))
	multierr.AppendInto(&errs, collector.Visit(w.BaseURL+"/search?q="+name))

	var bottleWG sync.WaitGroup

	bottleChan := make(chan scrapeResults, len(scrapedPages))

	appendResult := func() {
		scraped := <-bottleChan
		results = append(results, scraped.bottles...)
		multierr.AppendInto(&errs, scraped.err)
		bottleWG.Done()
	}

	for _, scraped := range scrapedPages {
		bottleWG.Add(1)

		go w.getBottleData(collector.Clone(), scraped, bottleChan)
		go appendResult()
	}

	bottleWG.Wait()

	w.logger.Info("finished scraping query results", zap.Int("count", len(results)), zap.Error(errs))

	return results, errs
}

func (w *WhiskybaseWebIntegration) getBottleData(detailCollector *colly.Collector, scraped BottleScraped, bottleChan chan scrapeResults) {
	bottle := model.Bottle{
		Expression: scraped.Name,
		Source:     IntegrationName,
		Brand: model.Brand{
			Name:     scraped.Brand,
			Category: scraped.Category,
		},
		Proof: extractProof(scraped.ABV),
	}

	detailCollector.OnHTML(".content", func(element *colly.HTMLElement) {
		content := BottleContent{}

		err := element.Unmarshal(&content)
		if err != nil {
			return
		}

		bottle.Notes = content.Notes
		bottle.VolumeML = extractVolume(content.Volume)
		bottle.StatedAge = extractAge(content.Age)
	})

	idString := scraped.IDLink[strings.LastIndex(scraped.IDLink, "/")+1:]
	w.logger.Info("scraping bottle page", zap.String("id", idString))

	err := detailCollector.Visit(w.BaseURL + "/whiskies/" + idString)

	bottleChan <- scrapeResults{bottles: []model.Bottle{bottle}, err: err}
}

// extractProof converts a scraped ABV percentage into US proof.
func extractProof(abv string) *float64 {
	if strings.Contains(abv, "%") {
		value, err := strconv.ParseFloat(strings.TrimSpace(abv[:strings.Index(abv, "%")]), 64) //nolint:gocritic // We know we won't get -1
		if err != nil {
			return nil
		}

		return pointy.Float64(value * 2)
	}

	return nil
}

func extractVolume(volume string) *int {
	fields := strings.Fields(volume)
	if len(fields) == 0 {
		return nil
	}

	value, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil
	}

	return pointy.Int(value)
}

func extractAge(age string) *float64 {
	fields := strings.Fields(age)
	if len(fields) == 0 {
		return nil
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil
	}

	return pointy.Float64(value)
}
